package table

import "fmt"

// ReadError reports a table that could not be opened or parsed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ShortRowError reports a row that has fewer cells than a column selector needs.
type ShortRowError struct {
	Path   string
	Line   int
	Column int
	Width  int
}

func (e *ShortRowError) Error() string {
	return fmt.Sprintf("%s:%d: column %d out of range (row has %d cells)", e.Path, e.Line, e.Column, e.Width)
}

// RowError wraps a build failure with the row position it came from.
type RowError struct {
	Path string
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
