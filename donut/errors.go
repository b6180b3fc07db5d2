package donut

import "errors"

// ErrInvalidK reports a non-positive donut width. DonutsForK does not
// return it: for k <= 0 it returns no bands.
var ErrInvalidK = errors.New("donut: k must be positive")

// ErrEmptyBand is returned when a requested band contains no vertices.
var ErrEmptyBand = errors.New("donut: band contains no vertices")
