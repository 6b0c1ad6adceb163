package claim

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingDelimiter is the cause when one of '#', '@', ',', ':', 'x' or a required space is absent or out of order
	ErrMissingDelimiter = errors.New("missing delimiter")

	// ErrBadNumber is the cause when a numeric field is not an unsigned 32-bit decimal
	ErrBadNumber = errors.New("bad number")
)

// ParseError describes the first malformed claim line
type ParseError struct {
	Line  int    // 1-based line number, 0 when parsing a single line
	Text  string // Offending line
	Field string // Delimiter or field that failed
	Err   error  // Underlying cause
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %s: %v", e.Line, e.Text, e.Field, e.Err)
	}
	return fmt.Sprintf("%q: %s: %v", e.Text, e.Field, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Cause exposes the cause to errors.Cause
func (e *ParseError) Cause() error {
	return e.Err
}
