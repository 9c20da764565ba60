package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the validated defaults.
func Load(fsys afero.Fs, path string) (AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, Validate(cfg)
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks struct tags on the whole configuration.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Overrides are command-line values; zero fields leave the config untouched.
type Overrides struct {
	DataDir  string
	Output   string
	Encoding string
	LogLevel string
	LogJSON  bool
}

// Apply merges non-zero overrides into cfg and validates the result.
func (o Overrides) Apply(cfg AppConfig) (AppConfig, error) {
	patch := AppConfig{
		DataDir:  o.DataDir,
		Output:   o.Output,
		Encoding: o.Encoding,
		Logging:  LoggingConfig{Level: o.LogLevel, JSON: o.LogJSON},
	}
	if err := mergo.Merge(&cfg, patch, mergo.WithOverride); err != nil {
		return AppConfig{}, fmt.Errorf("apply overrides: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
