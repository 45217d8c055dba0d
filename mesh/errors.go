package mesh

import "errors"

// Sentinel errors for mesh construction and decoding.
var (
	// ErrVertexIndex indicates a face references a vertex index outside
	// the vertex arena (dangling reference).
	ErrVertexIndex = errors.New("mesh: face references vertex out of range")

	// ErrPartRange indicates a negative part id or a gap in the part-id
	// range: ids must be contiguous starting at 0.
	ErrPartRange = errors.New("mesh: part ids must be contiguous starting at 0")

	// ErrMalformedOBJ indicates an unparseable wavefront OBJ record.
	ErrMalformedOBJ = errors.New("mesh: malformed OBJ record")
)
