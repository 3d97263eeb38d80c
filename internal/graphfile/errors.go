package graphfile

import "errors"

// Sentinel errors for graph documents.
var (
	// ErrEmptyDocument is returned when a document lists no vertices.
	ErrEmptyDocument = errors.New("graphfile: document has no vertices")

	// ErrBadVertex is returned when a vertex is not a scalar value.
	ErrBadVertex = errors.New("graphfile: vertex must be a scalar")

	// ErrBadEdge is returned when an edge is not a pair of scalars.
	ErrBadEdge = errors.New("graphfile: edge must be a pair of vertices")
)
