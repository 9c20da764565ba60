package converter

import "fmt"

// ConversionError names the table a conversion failed on.
type ConversionError struct {
	Table string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s table: %v", e.Table, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
