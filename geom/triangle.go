package geom

import "github.com/golang/geo/r3"

// Triangle is a geometric triangle with three corners in space.
type Triangle struct {
	A, B, C r3.Vector
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t Triangle) Bounds() AABB {
	return AABBOf(t.A, t.B, t.C)
}

// Centroid returns the arithmetic mean of the three corners.
func (t Triangle) Centroid() r3.Vector {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// Normal returns the (unnormalized) plane normal (B-A)×(C-A).
// Degenerate triangles yield the zero vector.
func (t Triangle) Normal() r3.Vector {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// edges returns the three corner pairs in a fixed order.
func (t Triangle) edges() [3][2]r3.Vector {
	return [3][2]r3.Vector{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}
