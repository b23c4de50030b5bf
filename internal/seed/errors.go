package seed

import (
	"errors"
	"fmt"
)

// ErrEmptyReferenceSet indicates a random pick was attempted before the
// authors or categories were seeded.
var ErrEmptyReferenceSet = errors.New("reference set is empty")

// SeedFormatError describes a malformed line in a books seed file.
type SeedFormatError struct {
	Line   int // 1-based, 0 when parsing a single line
	Reason string
	Err    error
}

func (e *SeedFormatError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("seed line %d: %s", e.Line, msg)
	}
	return "seed line: " + msg
}

func (e *SeedFormatError) Unwrap() error {
	return e.Err
}
