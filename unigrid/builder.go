package unigrid

import (
	"sort"

	"github.com/golang/geo/r3"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trigrid/geom"
	"github.com/katalvlaran/trigrid/mesh"
)

// pair is one cell assignment emitted during the build.
type pair struct {
	cell, face int
}

// Build constructs a UniformGrid over m at resolution (resX,resY,resZ).
// Every face is assigned to every cell its bounding box overlaps; a
// face with a degenerate (zero-volume) box still lands in the cell
// containing it. The input mesh is not mutated; an empty mesh yields a
// grid of all-empty cells.
// Returns ErrNilMesh or ErrBadResolution on invalid input.
// Complexity: O(P log P) time for P emitted pairs, O(P + cells) memory.
func Build(m *mesh.Mesh, resX, resY, resZ int, opts ...Option) (*UniformGrid, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if resX < 1 || resY < 1 || resZ < 1 {
		return nil, ErrBadResolution
	}
	cfg := gatherOptions(opts...)

	bounds := m.Bounds()
	if bounds.IsEmpty() {
		// Empty mesh: pin the box to the origin so cell geometry stays finite.
		bounds = geom.AABB{}
	}

	g := &UniformGrid{
		bounds:    bounds,
		res:       [3]int{resX, resY, resZ},
		cellSize:  cellSizeFor(bounds, resX, resY, resZ),
		faceCount: m.FaceCount(),
	}

	pairs, err := emitPairs(g, m, cfg.workers)
	if err != nil {
		return nil, err
	}

	// Synchronization point: global sort by (cell, face). The face
	// tie-break makes cell contents deterministic across builds.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].cell != pairs[j].cell {
			return pairs[i].cell < pairs[j].cell
		}
		return pairs[i].face < pairs[j].face
	})

	// Boundary table: prefix sums over per-cell counts.
	g.cellStart = make([]int, g.CellCount()+1)
	for _, p := range pairs {
		g.cellStart[p.cell+1]++
	}
	for c := 0; c < g.CellCount(); c++ {
		g.cellStart[c+1] += g.cellStart[c]
	}
	g.faces = make([]int, len(pairs))
	for i, p := range pairs {
		g.faces[i] = p.face
	}

	return g, nil
}

// cellSizeFor divides the box extent by the resolution. A zero extent
// on an axis (flat or empty object) gets a unit cell size so that every
// coordinate maps to cell 0 on that axis.
func cellSizeFor(b geom.AABB, rx, ry, rz int) r3.Vector {
	size := b.Size()
	cs := r3.Vector{
		X: size.X / float64(rx),
		Y: size.Y / float64(ry),
		Z: size.Z / float64(rz),
	}
	if cs.X <= 0 {
		cs.X = 1
	}
	if cs.Y <= 0 {
		cs.Y = 1
	}
	if cs.Z <= 0 {
		cs.Z = 1
	}

	return cs
}

// emitPairs produces the (cell, face) assignments, fanning out over
// contiguous face ranges. Workers write only to their own slice; order
// within the result is irrelevant because Build sorts globally.
func emitPairs(g *UniformGrid, m *mesh.Mesh, workers int) ([]pair, error) {
	faces := m.FaceCount()
	if faces == 0 {
		return nil, nil
	}
	if workers > faces {
		workers = faces
	}

	chunks := make([][]pair, workers)
	chunk := (faces + workers - 1) / workers

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, (w+1)*chunk
		if hi > faces {
			hi = faces
		}
		eg.Go(func() error {
			out := make([]pair, 0, (hi-lo)*2)
			for f := lo; f < hi; f++ {
				clo, chi := g.CellRange(m.Triangle(f).Bounds())
				for iz := clo[2]; iz <= chi[2]; iz++ {
					for iy := clo[1]; iy <= chi[1]; iy++ {
						for ix := clo[0]; ix <= chi[0]; ix++ {
							out = append(out, pair{cell: g.CellIndex(ix, iy, iz), face: f})
						}
					}
				}
			}
			chunks[w] = out

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	all := make([]pair, 0, total)
	for _, c := range chunks {
		all = append(all, c...)
	}

	return all, nil
}
