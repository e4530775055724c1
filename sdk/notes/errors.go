package notes

import (
	"errors"
	"fmt"
)

// Error definitions for rejected inputs.
var (
	ErrFormat = errors.New("invalid note format")
	ErrRange  = errors.New("value out of range")
)

// FormatError reports text that could not be read as a note, pitch class or octave.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %q: %s", ErrFormat, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// RangeError reports a conversion whose result falls outside [Min, Max].
type RangeError struct {
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %d not in [%d, %d]", ErrRange, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrRange }
