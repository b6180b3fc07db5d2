package graphio

import "errors"

// ErrMalformedInput is returned when the input does not follow the
// "n\nm\n" + 2*m "u v" lines shape, or a line fails to parse as two
// integers.
var ErrMalformedInput = errors.New("graphio: malformed input")
