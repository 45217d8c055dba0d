package unigrid

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/trigrid/geom"
)

// UniformGrid maps every cell of a regular 3D subdivision of a mesh's
// bounding box to the set of face indices whose bounds overlap the
// cell. Construct with Build; immutable and safe for concurrent readers
// thereafter.
type UniformGrid struct {
	bounds    geom.AABB
	res       [3]int
	cellSize  r3.Vector
	faceCount int

	// faces, sorted by cell id (ties by face id); cellStart[c] ..
	// cellStart[c+1] is the half-open slice of faces overlapping cell c.
	faces     []int
	cellStart []int
}

// Bounds returns the grid's axis-aligned bounding box.
func (g *UniformGrid) Bounds() geom.AABB { return g.bounds }

// Resolution returns the cell counts per axis.
func (g *UniformGrid) Resolution() (rx, ry, rz int) {
	return g.res[0], g.res[1], g.res[2]
}

// CellSize returns the per-axis cell extent.
func (g *UniformGrid) CellSize() r3.Vector { return g.cellSize }

// CellCount returns the total number of cells, Rx·Ry·Rz.
func (g *UniformGrid) CellCount() int { return g.res[0] * g.res[1] * g.res[2] }

// FaceCount returns the number of faces of the mesh the grid was built
// over (not the number of emitted pairs).
func (g *UniformGrid) FaceCount() int { return g.faceCount }

// PairCount returns the number of (cell, face) assignments.
func (g *UniformGrid) PairCount() int { return len(g.faces) }

// CellIndex linearizes cell coordinates, x fastest:
// (iz·Ry + iy)·Rx + ix. The caller must keep each coordinate within
// the resolution.
func (g *UniformGrid) CellIndex(ix, iy, iz int) int {
	return (iz*g.res[1]+iy)*g.res[0] + ix
}

// CellCoords inverts CellIndex.
func (g *UniformGrid) CellCoords(idx int) (ix, iy, iz int) {
	ix = idx % g.res[0]
	idx /= g.res[0]

	return ix, idx % g.res[1], idx / g.res[1]
}

// CellPrimitives returns the face indices overlapping cell idx, in
// ascending order. The returned slice aliases the grid's arena and must
// be treated as read-only. Empty cells yield an empty slice.
// Returns ErrCellIndex when idx is outside [0, CellCount).
// Complexity: O(1).
func (g *UniformGrid) CellPrimitives(idx int) ([]int, error) {
	if idx < 0 || idx >= g.CellCount() {
		return nil, ErrCellIndex
	}

	return g.faces[g.cellStart[idx]:g.cellStart[idx+1]], nil
}

// CellBounds returns the axis-aligned box of cell idx.
// Returns ErrCellIndex when idx is outside [0, CellCount).
func (g *UniformGrid) CellBounds(idx int) (geom.AABB, error) {
	if idx < 0 || idx >= g.CellCount() {
		return geom.AABB{}, ErrCellIndex
	}
	ix, iy, iz := g.CellCoords(idx)
	lo := r3.Vector{
		X: g.bounds.Min.X + float64(ix)*g.cellSize.X,
		Y: g.bounds.Min.Y + float64(iy)*g.cellSize.Y,
		Z: g.bounds.Min.Z + float64(iz)*g.cellSize.Z,
	}

	return geom.AABB{Min: lo, Max: lo.Add(g.cellSize)}, nil
}

// cellOf returns the clamped cell coordinates containing point p.
func (g *UniformGrid) cellOf(p r3.Vector) (ix, iy, iz int) {
	ix = clampCell(p.X, g.bounds.Min.X, g.cellSize.X, g.res[0])
	iy = clampCell(p.Y, g.bounds.Min.Y, g.cellSize.Y, g.res[1])
	iz = clampCell(p.Z, g.bounds.Min.Z, g.cellSize.Z, g.res[2])

	return ix, iy, iz
}

// CellRange returns the inclusive range of cell coordinates whose cells
// overlap box b, clamped to the grid. Degenerate boxes map to the
// single cell containing their only point per axis.
func (g *UniformGrid) CellRange(b geom.AABB) (lo, hi [3]int) {
	lo[0], lo[1], lo[2] = g.cellOf(b.Min)
	hi[0], hi[1], hi[2] = g.cellOf(b.Max)

	return lo, hi
}

// clampCell maps a coordinate to its cell index on one axis, clamped to
// [0, res). Points on the outer max face belong to the last cell.
func clampCell(v, min, size float64, res int) int {
	if size <= 0 {
		return 0
	}
	c := int(math.Floor((v - min) / size))
	if c < 0 {
		return 0
	}
	if c >= res {
		return res - 1
	}

	return c
}

// Stats summarizes grid occupancy.
type Stats struct {
	// Pairs is the total number of (cell, face) assignments.
	Pairs int
	// EmptyCells counts cells with no overlapping face.
	EmptyCells int
	// MaxPerCell is the largest number of faces in one cell.
	MaxPerCell int
	// MeanPerCell is Pairs divided by the cell count.
	MeanPerCell float64
}

// Stats computes occupancy diagnostics over the boundary table.
// Complexity: O(cells).
func (g *UniformGrid) Stats() Stats {
	s := Stats{Pairs: len(g.faces)}
	for c := 0; c < g.CellCount(); c++ {
		n := g.cellStart[c+1] - g.cellStart[c]
		if n == 0 {
			s.EmptyCells++
		}
		if n > s.MaxPerCell {
			s.MaxPerCell = n
		}
	}
	if cells := g.CellCount(); cells > 0 {
		s.MeanPerCell = float64(s.Pairs) / float64(cells)
	}

	return s
}
