// Package config handles converter configuration loading and validation.
//
// Configuration is loaded from an optional YAML file on top of built-in
// defaults and validated using struct tags. The defaults reproduce the
// layout of the Data directory of the server repository, so an empty file
// (or no file) converts the tables in ./Data into ./Data/DBBase.json.
package config
