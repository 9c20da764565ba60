// Package normalize holds the per-cell conversions applied while building
// records from signaling tables.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// Nashi is the placeholder the source tables use for "no value".
const Nashi = "なし"

// PresentMarker is the marker character that reads as true in O/X columns.
const PresentMarker = "O"

// RemoveNashi returns xs without placeholder and empty entries, keeping the
// order of the rest. The result is never nil so it serializes as [].
func RemoveNashi(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x == Nashi || x == "" {
			continue
		}
		out = append(out, x)
	}
	return out
}

// IsNashi reports whether a cell holds the placeholder token.
func IsNashi(s string) bool {
	return s == Nashi
}

// ParseOX converts an O/X marker cell to a bool.
// Only the exact present marker is true.
func ParseOX(s string) bool {
	return s == PresentMarker
}

// IntError is returned when an integer cell is not a base-10 number.
type IntError struct {
	Value string
	Err   error
}

func (e *IntError) Error() string {
	return fmt.Sprintf("invalid integer %q: %v", e.Value, e.Err)
}

func (e *IntError) Unwrap() error { return e.Err }

// ParseOptionalInt parses an optional integer cell.
// An empty (or blank) cell yields nil, anything else must be base-10.
func ParseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, &IntError{Value: s, Err: err}
	}
	return &v, nil
}
