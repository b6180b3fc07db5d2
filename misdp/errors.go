package misdp

import "errors"

// ErrInvalidNode is returned when a nice-TD node has a child count outside
// {0, 1, 2}.
var ErrInvalidNode = errors.New("misdp: node has an invalid number of children for a nice tree decomposition")

// ErrNoMisFound is returned when the root bag has no recorded table
// entries after Solve has processed the whole tree.
var ErrNoMisFound = errors.New("misdp: no independent set found at the root bag")
