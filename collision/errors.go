package collision

import "errors"

var (
	// ErrNilMesh is returned by Detect for a nil mesh.
	ErrNilMesh = errors.New("collision: mesh must not be nil")

	// ErrNegativeTolerance is returned by Detect when ε < 0.
	ErrNegativeTolerance = errors.New("collision: tolerance must be non-negative")

	// ErrGridMismatch is returned when a grid supplied via WithGrid was
	// not built over the mesh being tested.
	ErrGridMismatch = errors.New("collision: supplied grid does not match mesh")
)
