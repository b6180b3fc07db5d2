package dcel

import "errors"

// ErrMalformedEmbedding indicates the half-edges supplied to Build do not
// describe a valid planar embedding: some arc never found a reverse-direction
// twin, or a face walk did not return to its starting arc within the number
// of arcs in the graph.
var ErrMalformedEmbedding = errors.New("dcel: malformed embedding")

// ErrIndexOutOfRange indicates a vertex or arc index fell outside the
// current arena bounds.
var ErrIndexOutOfRange = errors.New("dcel: index out of range")

// ErrPreconditionViolated indicates a mutation's precondition does not hold,
// e.g. MergeVertices(u, u) or MergeVertices on two vertices with no edge
// between them.
var ErrPreconditionViolated = errors.New("dcel: precondition violated")
