package collision

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trigrid/geom"
	"github.com/katalvlaran/trigrid/graph"
	"github.com/katalvlaran/trigrid/mesh"
	"github.com/katalvlaran/trigrid/unigrid"
)

// Detect returns the ε-proximity graph of m's parts: one node per part
// index, an edge {a, b} iff a ≠ b and some face of part a lies within
// distance eps of some face of part b (inclusive). An empty mesh yields
// an edgeless graph over its parts. The result is deterministic and
// independent of the worker count.
// Returns ErrNilMesh, ErrNegativeTolerance, or ErrGridMismatch.
// Complexity: near-linear in faces for evenly distributed geometry;
// O(F²) exact tests in the worst case of total overlap.
func Detect(m *mesh.Mesh, eps float64, opts ...Option) (*graph.Graph, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if eps < 0 {
		return nil, ErrNegativeTolerance
	}
	out, err := graph.New(m.PartCount())
	if err != nil {
		return nil, err
	}
	if m.FaceCount() == 0 {
		return out, nil
	}

	cfg := gatherOptions(m.FaceCount(), opts...)
	grid := cfg.grid
	if grid == nil {
		grid, err = unigrid.Build(m, cfg.resX, cfg.resY, cfg.resZ,
			unigrid.WithWorkers(cfg.workers))
		if err != nil {
			return nil, err
		}
	} else if grid.FaceCount() != m.FaceCount() || grid.Bounds() != m.Bounds() {
		return nil, ErrGridMismatch
	}

	// Face bounds are reused by every AABB reject; compute them once.
	bounds := make([]geom.AABB, m.FaceCount())
	for f := range bounds {
		bounds[f] = m.Triangle(f).Bounds()
	}

	edgeSets, err := narrowPhase(m, grid, bounds, eps, cfg.workers)
	if err != nil {
		return nil, err
	}
	for _, set := range edgeSets {
		for e := range set {
			if err := out.AddEdge(e.U, e.V); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// narrowPhase fans the exact distance tests out over contiguous face
// ranges. Each worker visits the cells its faces' ε-expanded boxes
// overlap, which covers every pair within eps: two faces closer than
// eps have boxes closer than eps, so the expanded box of one overlaps
// a cell holding the other. Only candidates with a higher face id are
// tested, so each pair is visited exactly once.
func narrowPhase(m *mesh.Mesh, grid *unigrid.UniformGrid, bounds []geom.AABB,
	eps float64, workers int) ([]map[graph.Edge]struct{}, error) {
	faces := m.FaceCount()
	if workers > faces {
		workers = faces
	}

	edgeSets := make([]map[graph.Edge]struct{}, workers)
	chunk := (faces + workers - 1) / workers

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, (w+1)*chunk
		if hi > faces {
			hi = faces
		}
		eg.Go(func() error {
			edges := make(map[graph.Edge]struct{})
			seen := make(map[int]struct{})
			for f := lo; f < hi; f++ {
				for k := range seen {
					delete(seen, k)
				}
				partF := m.Face(f).Part
				triF := m.Triangle(f)
				clo, chi := grid.CellRange(bounds[f].Expand(eps))
				for iz := clo[2]; iz <= chi[2]; iz++ {
					for iy := clo[1]; iy <= chi[1]; iy++ {
						for ix := clo[0]; ix <= chi[0]; ix++ {
							cands, err := grid.CellPrimitives(grid.CellIndex(ix, iy, iz))
							if err != nil {
								return err
							}
							for _, c := range cands {
								if c <= f {
									continue
								}
								if _, ok := seen[c]; ok {
									continue
								}
								seen[c] = struct{}{}
								partC := m.Face(c).Part
								if partC == partF {
									continue
								}
								e := graph.Edge{U: partF, V: partC}
								if partC < partF {
									e = graph.Edge{U: partC, V: partF}
								}
								if _, ok := edges[e]; ok {
									continue
								}
								if bounds[f].Distance(bounds[c]) > eps {
									continue
								}
								if geom.TriangleDistance(triF, m.Triangle(c)) <= eps {
									edges[e] = struct{}{}
								}
							}
						}
					}
				}
			}
			edgeSets[w] = edges

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return edgeSets, nil
}
