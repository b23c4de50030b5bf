package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates no book matched an exact lookup.
var ErrNotFound = errors.New("book not found")

// ErrInvalidDelta indicates a non-positive copy increase.
var ErrInvalidDelta = errors.New("copy increase must be positive")

// DateParseError is returned when a date argument does not match the layout
// an operation expects.
type DateParseError struct {
	Input  string
	Layout string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q (expected layout %q): %v", e.Input, e.Layout, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
