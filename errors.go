package imgdim

import "imgdim/formats"

// ErrUnsupportedFormat is returned when no known signature matches the
// source's leading bytes.
var ErrUnsupportedFormat = formats.ErrUnsupportedFormat

// ParseError reports that a format was identified but its header could
// not be decoded, either because the data is malformed, truncated, or
// exceeds one of the bounded-work limits. Use errors.As to recover the
// Format the failure occurred under.
type ParseError = formats.ParseError
