package unigrid

import "errors"

// Sentinel errors for grid construction and queries.
var (
	// ErrNilMesh indicates a nil *mesh.Mesh was passed in.
	ErrNilMesh = errors.New("unigrid: mesh is nil")

	// ErrBadResolution indicates a resolution component < 1.
	ErrBadResolution = errors.New("unigrid: resolution components must be >= 1")

	// ErrCellIndex indicates a cell lookup outside [0, CellCount).
	ErrCellIndex = errors.New("unigrid: cell index out of range")

	// ErrGridMismatch indicates the grid was built over different
	// geometry than the mesh it is being checked or queried against.
	ErrGridMismatch = errors.New("unigrid: grid does not match mesh")

	// ErrGridInvalid indicates the self-test found a cell assignment
	// inconsistent with the geometry. This is an internal invariant
	// violation, not a user input error.
	ErrGridInvalid = errors.New("unigrid: boundary table inconsistent with geometry")
)
