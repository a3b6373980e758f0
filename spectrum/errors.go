package spectrum

import (
	"errors"
	"fmt"
)

// Errors returned by spectrum functions.
var (
	ErrInputFormat    = errors.New("spectrum: malformed input")
	ErrEmpty          = errors.New("spectrum: no data")
	ErrLengthMismatch = errors.New("spectrum: length mismatch")
	ErrUnknownLabel   = errors.New("spectrum: unknown label")
)

// ParseError reports the first line of a spectrum text that could not be
// read as a number. It matches ErrInputFormat with errors.Is.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("spectrum: line %d: cannot parse %q", e.Line, e.Text)
	}
	return fmt.Sprintf("spectrum: line %d: cannot parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInputFormat.
func (e *ParseError) Is(target error) bool { return target == ErrInputFormat }

// LengthError names the spectrum whose channel count differs from the rest
// of its set. It matches ErrLengthMismatch with errors.Is.
type LengthError struct {
	Label Label
	Len   int
	Want  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("spectrum: %s has %d channels, want %d", e.Label, e.Len, e.Want)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthError) Is(target error) bool { return target == ErrLengthMismatch }
