// Package formatter serializes a DBBase document.
//
// This package is organized into:
// - json.go: explicit, field-ordered JSON writers, one per record type
// - file.go: writing the finished document to disk
//
// Serialization is done by hand so the key order is fixed by the writers and
// not by struct declaration order. Strings are written literally: Japanese
// text and HTML-significant characters are not escaped.
package formatter
