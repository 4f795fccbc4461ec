package formats

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedFormat is returned when the input does not match
	// any known container signature.
	ErrUnsupportedFormat = errors.New("formats: unsupported format")

	// ErrInvalidData indicates a matched signature led to a malformed,
	// truncated, or unhandled container body.
	ErrInvalidData = errors.New("formats: invalid data")

	// ErrBudgetExceeded is returned when a parser would need to read
	// past the bounded-work ceiling to make progress.
	ErrBudgetExceeded = errors.New("formats: read budget exceeded")
)

// ParseError carries the format that was identified before parsing
// failed, so callers can distinguish "wrong format" from "right
// format, broken file" without string matching.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("formats: %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(f Format, err error) *ParseError {
	return &ParseError{Format: f, Err: err}
}
