package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidRangeFormat indicates a range descriptor is not "X" or "X-Y".
var ErrInvalidRangeFormat = errors.New("invalid range format")

// ErrIncompleteRange indicates a cell range is missing its columns or rows descriptor.
var ErrIncompleteRange = errors.New("incomplete cell range")

// ErrInvalidColumnRange indicates a columns descriptor does not resolve to a column span.
var ErrInvalidColumnRange = errors.New("invalid columns range")

// ErrInvalidRowRange indicates a rows descriptor does not resolve to a row span.
var ErrInvalidRowRange = errors.New("invalid rows range")

// RangeError describes why a range descriptor was rejected.
type RangeError struct {
	Field  string // "columns_range", "rows_range" or "range"
	Value  string
	Reason string
	Err    error
}

func (e *RangeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %s %q", e.Err, e.Field, e.Value)
	}
	return fmt.Sprintf("%v: %s %q: %s", e.Err, e.Field, e.Value, e.Reason)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

func newRangeError(err error, field, value, reason string) *RangeError {
	return &RangeError{Field: field, Value: value, Reason: reason, Err: err}
}
