package collision

import (
	"math"
	"runtime"

	"github.com/katalvlaran/trigrid/unigrid"
)

// Option configures Detect.
type Option func(*config)

type config struct {
	resX, resY, resZ int
	grid             *unigrid.UniformGrid
	workers          int
}

// WithResolution sets the broad-phase grid resolution per axis. The
// default is DefaultResolution of the mesh's face count on every axis.
// Ignored when WithGrid is also given.
func WithResolution(rx, ry, rz int) Option {
	return func(c *config) { c.resX, c.resY, c.resZ = rx, ry, rz }
}

// WithGrid reuses an already built grid instead of building one. The
// grid must have been built over the same mesh; Detect returns
// ErrGridMismatch otherwise.
func WithGrid(g *unigrid.UniformGrid) Option {
	return func(c *config) { c.grid = g }
}

// WithWorkers sets the number of goroutines for the narrow phase.
// Values < 1 fall back to the default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// DefaultResolution returns the per-axis cell count used when no
// resolution is configured: ⌈∛faces⌉ clamped to [1, 64], so cells hold
// a handful of faces each without the cell count outgrowing the mesh.
func DefaultResolution(faceCount int) int {
	if faceCount < 1 {
		return 1
	}
	r := int(math.Ceil(math.Cbrt(float64(faceCount))))
	if r < 1 {
		r = 1
	}
	if r > 64 {
		r = 64
	}

	return r
}

// gatherOptions resolves option setters against defaults for a mesh of
// faceCount faces.
func gatherOptions(faceCount int, opts ...Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.resX < 1 || c.resY < 1 || c.resZ < 1 {
		r := DefaultResolution(faceCount)
		c.resX, c.resY, c.resZ = r, r, r
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}

	return c
}
