package reduce

import "errors"

// ErrUnknownKind is returned when Reduce is asked to apply a Kind it does
// not recognize.
var ErrUnknownKind = errors.New("reduce: unknown reduction kind")
