package graph

import "errors"

var (
	// ErrBadNodeCount is returned by New for a negative node count.
	ErrBadNodeCount = errors.New("graph: node count must be non-negative")

	// ErrNodeRange is returned when a node id is outside [0, NodeCount).
	ErrNodeRange = errors.New("graph: node id out of range")

	// ErrSelfLoop is returned when an edge's endpoints coincide.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrMatrixSize is returned by FromAdjacencyMatrix when the flat
	// matrix length is not n·n.
	ErrMatrixSize = errors.New("graph: matrix length does not match node count")
)
