package unigrid

import (
	"fmt"

	"github.com/katalvlaran/trigrid/mesh"
)

// Validate re-derives, for every stride-th face of m, the cell range
// the face should occupy and checks the grid's boundary table against
// it: the face must be present in every cell of that range and in no
// cell outside it. A stride < 1 checks every face.
//
// This is the builder's self-test, not a general-purpose query; it
// exists so callers can cheaply spot-check a grid after construction.
// Returns ErrNilMesh, ErrGridMismatch when grid and mesh disagree on
// face count, and ErrGridInvalid on an inconsistent assignment.
// Complexity: O(P + sampled range cells).
func Validate(g *UniformGrid, m *mesh.Mesh, stride int) error {
	if m == nil {
		return ErrNilMesh
	}
	if g == nil || g.faceCount != m.FaceCount() {
		return ErrGridMismatch
	}
	if stride < 1 {
		stride = 1
	}

	// One pass over the pair arena: occurrences per face.
	occurrences := make([]int, g.faceCount)
	for _, f := range g.faces {
		occurrences[f]++
	}

	for f := 0; f < g.faceCount; f += stride {
		lo, hi := g.CellRange(m.Triangle(f).Bounds())
		rangeCells := 0
		for iz := lo[2]; iz <= hi[2]; iz++ {
			for iy := lo[1]; iy <= hi[1]; iy++ {
				for ix := lo[0]; ix <= hi[0]; ix++ {
					rangeCells++
					cell := g.CellIndex(ix, iy, iz)
					if !cellContains(g, cell, f) {
						return fmt.Errorf("face %d missing from cell %d: %w", f, cell, ErrGridInvalid)
					}
				}
			}
		}
		// Completeness inside the range plus a matching total count
		// implies the face appears in no cell outside the range.
		if occurrences[f] != rangeCells {
			return fmt.Errorf("face %d appears %d times, want %d: %w",
				f, occurrences[f], rangeCells, ErrGridInvalid)
		}
	}

	return nil
}

// cellContains reports whether face f is listed in cell's slice,
// using the ascending face order the builder guarantees.
func cellContains(g *UniformGrid, cell, f int) bool {
	faces := g.faces[g.cellStart[cell]:g.cellStart[cell+1]]
	lo, hi := 0, len(faces)
	for lo < hi {
		mid := (lo + hi) / 2
		if faces[mid] < f {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo < len(faces) && faces[lo] == f
}
