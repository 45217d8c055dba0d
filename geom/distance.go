package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// squaredParallelTol guards the denominators of the closest-point
// solvers against fully degenerate segments.
const squaredParallelTol = 1e-12

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

// ClosestPointSegment returns the point on segment [a,b] closest to p.
// Complexity: O(1).
func ClosestPointSegment(p, a, b r3.Vector) r3.Vector {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom <= squaredParallelTol {
		return a
	}
	t := clamp01(p.Sub(a).Dot(ab) / denom)

	return a.Add(ab.Mul(t))
}

// ClosestPointsSegments returns the pair of points, one on [p1,q1] and
// one on [p2,q2], realizing the minimum distance between the segments.
// Complexity: O(1).
func ClosestPointsSegments(p1, q1, p2, q2 r3.Vector) (r3.Vector, r3.Vector) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64
	switch {
	case a <= squaredParallelTol && e <= squaredParallelTol:
		// Both segments degenerate to points.
		return p1, p2
	case a <= squaredParallelTol:
		t = clamp01(f / e)
	case e <= squaredParallelTol:
		s = clamp01(-d1.Dot(r) / a)
	default:
		c := d1.Dot(r)
		b := d1.Dot(d2)
		denom := a*e - b*b
		if denom != 0 {
			// Non-parallel: unconstrained minimum, clamped to [0,1].
			s = clamp01((b*f - c*e) / denom)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = clamp01(-c / a)
		} else if t > 1 {
			t = 1
			s = clamp01((b - c) / a)
		}
	}

	return p1.Add(d1.Mul(s)), p2.Add(d2.Mul(t))
}

// ClosestPointTriangle returns the point of triangle t closest to p,
// walking the Voronoi regions of the triangle's features.
// Complexity: O(1).
func ClosestPointTriangle(p r3.Vector, t Triangle) r3.Vector {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	ap := p.Sub(t.A)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return t.A
	}

	bp := p.Sub(t.B)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return t.B
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return t.A.Add(ab.Mul(v))
	}

	cp := p.Sub(t.C)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return t.C
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return t.A.Add(ac.Mul(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return t.B.Add(t.C.Sub(t.B).Mul(w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom

	return t.A.Add(ab.Mul(v)).Add(ac.Mul(w))
}

// insideTriangle reports whether point x, assumed to lie in the plane of
// t, falls within the triangle (barycentric test, boundary inclusive).
func insideTriangle(x r3.Vector, t Triangle) bool {
	v0 := t.B.Sub(t.A)
	v1 := t.C.Sub(t.A)
	v2 := x.Sub(t.A)
	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	denom := d00*d11 - d01*d01
	if denom <= squaredParallelTol {
		return false
	}
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom

	return v >= 0 && w >= 0 && v+w <= 1
}

// ClosestPointsSegmentTriangle returns the pair of points, one on
// segment [a,b] and one on triangle t, realizing the minimum distance
// between them. A segment piercing the triangle interior yields a
// coincident pair (distance 0).
// Complexity: O(1).
func ClosestPointsSegmentTriangle(a, b r3.Vector, t Triangle) (r3.Vector, r3.Vector) {
	// Interior crossing: the segment straddles the triangle plane and the
	// crossing point lies inside the triangle.
	n := t.Normal()
	if n.Dot(n) > squaredParallelTol {
		da := n.Dot(a.Sub(t.A))
		db := n.Dot(b.Sub(t.A))
		if da*db <= 0 && da != db {
			x := a.Add(b.Sub(a).Mul(da / (da - db)))
			if insideTriangle(x, t) {
				return x, x
			}
		}
	}

	// Otherwise the minimum is realized against a triangle edge or by a
	// segment endpoint against the triangle face.
	bestSeg, bestTri := ClosestPointsSegments(a, b, t.A, t.B)
	best := bestSeg.Sub(bestTri).Norm2()
	tEdges := t.edges()
	for _, e := range tEdges[1:] {
		sp, tp := ClosestPointsSegments(a, b, e[0], e[1])
		if d := sp.Sub(tp).Norm2(); d < best {
			best, bestSeg, bestTri = d, sp, tp
		}
	}
	for _, p := range [2]r3.Vector{a, b} {
		tp := ClosestPointTriangle(p, t)
		if d := p.Sub(tp).Norm2(); d < best {
			best, bestSeg, bestTri = d, p, tp
		}
	}

	return bestSeg, bestTri
}

// SegmentTriangleDistance returns the minimum distance between segment
// [a,b] and triangle t.
func SegmentTriangleDistance(a, b r3.Vector, t Triangle) float64 {
	sp, tp := ClosestPointsSegmentTriangle(a, b, t)
	return sp.Sub(tp).Norm()
}

// TriangleDistance returns the minimum distance between two triangles:
// 0 when they touch or intersect. Every realizing pair involves an edge
// of one triangle, so testing the six edges against the opposite
// triangle is exhaustive.
// Complexity: O(1).
func TriangleDistance(t1, t2 Triangle) float64 {
	sp, tp := ClosestPointsSegmentTriangle(t1.A, t1.B, t2)
	best := sp.Sub(tp).Norm2()
	t1Edges := t1.edges()
	for _, e := range t1Edges[1:] {
		sp, tp = ClosestPointsSegmentTriangle(e[0], e[1], t2)
		if d := sp.Sub(tp).Norm2(); d < best {
			best = d
		}
	}
	for _, e := range t2.edges() {
		sp, tp = ClosestPointsSegmentTriangle(e[0], e[1], t1)
		if d := sp.Sub(tp).Norm2(); d < best {
			best = d
		}
	}

	return math.Sqrt(best)
}
