package bfstree

import "errors"

// ErrGraphNil is returned when BFS is called with a nil graph.
var ErrGraphNil = errors.New("bfstree: graph is nil")

// ErrRootOutOfRange is returned when root is outside the graph's vertex
// arena.
var ErrRootOutOfRange = errors.New("bfstree: root out of range")
