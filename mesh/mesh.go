package mesh

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/trigrid/geom"
)

// Face is one triangular primitive: three vertex indices and the id of
// the part the primitive belongs to.
type Face struct {
	V0, V1, V2 int
	Part       int
}

// Mesh is an immutable triangulated object: a vertex arena, a face
// arena, and the derived part count and bounds. Construct with New;
// a Mesh is safe for concurrent readers thereafter.
type Mesh struct {
	vertices []r3.Vector
	faces    []Face
	parts    int
	bounds   geom.AABB
}

// New validates vertices and faces and returns a Mesh holding deep
// copies of both. Zero faces is a valid degenerate object.
// Returns ErrVertexIndex for a dangling vertex reference and
// ErrPartRange when part ids are negative or non-contiguous.
// Complexity: O(V+F) time and memory.
func New(vertices []r3.Vector, faces []Face) (*Mesh, error) {
	maxPart := -1
	for i, f := range faces {
		for _, v := range [3]int{f.V0, f.V1, f.V2} {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("face %d vertex %d: %w", i, v, ErrVertexIndex)
			}
		}
		if f.Part < 0 {
			return nil, fmt.Errorf("face %d part %d: %w", i, f.Part, ErrPartRange)
		}
		if f.Part > maxPart {
			maxPart = f.Part
		}
	}

	// Contiguity: every id in [0, maxPart] must be referenced.
	seen := make([]bool, maxPart+1)
	for _, f := range faces {
		seen[f.Part] = true
	}
	for id, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("part %d unreferenced: %w", id, ErrPartRange)
		}
	}

	bounds := geom.AABBOf(vertices...)

	m := &Mesh{
		vertices: append([]r3.Vector(nil), vertices...),
		faces:    append([]Face(nil), faces...),
		parts:    maxPart + 1,
		bounds:   bounds,
	}

	return m, nil
}

// VertexCount returns the number of vertices in the arena.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of triangular primitives.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// PartCount returns the number of disjoint parts (0 for an empty mesh).
func (m *Mesh) PartCount() int { return m.parts }

// Vertex returns the position of vertex i. The caller must ensure
// 0 ≤ i < VertexCount.
func (m *Mesh) Vertex(i int) r3.Vector { return m.vertices[i] }

// Face returns face i. The caller must ensure 0 ≤ i < FaceCount.
func (m *Mesh) Face(i int) Face { return m.faces[i] }

// Part returns the part id of face i.
func (m *Mesh) Part(i int) int { return m.faces[i].Part }

// Triangle resolves face i into its geometric triangle.
func (m *Mesh) Triangle(i int) geom.Triangle {
	f := m.faces[i]
	return geom.Triangle{A: m.vertices[f.V0], B: m.vertices[f.V1], C: m.vertices[f.V2]}
}

// Bounds returns the axis-aligned bounding box of all vertices.
// An empty mesh returns geom.EmptyAABB().
func (m *Mesh) Bounds() geom.AABB { return m.bounds }
