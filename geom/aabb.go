package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// AABB is a closed axis-aligned bounding box. The zero value is not
// meaningful; use EmptyAABB to start an accumulation.
type AABB struct {
	Min, Max r3.Vector
}

// EmptyAABB returns the identity element for Union: a box with +Inf
// minima and -Inf maxima that contains no points.
func EmptyAABB() AABB {
	return AABB{
		Min: r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// AABBOf returns the bounding box of a point set.
// Zero points yield EmptyAABB.
// Complexity: O(n).
func AABBOf(points ...r3.Vector) AABB {
	b := EmptyAABB()
	for _, p := range points {
		b = b.Extend(p)
	}

	return b
}

// Extend grows the box to contain p.
func (b AABB) Extend(p r3.Vector) AABB {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Min.Z = math.Min(b.Min.Z, p.Z)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	b.Max.Z = math.Max(b.Max.Z, p.Z)

	return b
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return b.Extend(o.Min).Extend(o.Max)
}

// Expand returns the box grown by eps on every side. A negative eps
// shrinks the box; callers are expected to pass eps ≥ 0.
func (b AABB) Expand(eps float64) AABB {
	d := r3.Vector{X: eps, Y: eps, Z: eps}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// IsEmpty reports whether the box contains no points (Min > Max on some
// axis, as in EmptyAABB).
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// IsDegenerate reports whether the box has zero volume: it is empty or
// flat along at least one axis. Degenerate boxes still occupy at least
// one grid cell (the one containing their centroid).
func (b AABB) IsDegenerate() bool {
	return b.IsEmpty() || b.Min.X == b.Max.X || b.Min.Y == b.Max.Y || b.Min.Z == b.Max.Z
}

// Center returns the midpoint of the box.
func (b AABB) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the per-axis extent of the box.
func (b AABB) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Overlaps reports whether b and o share at least one point.
// Touching faces count as overlap (closed boxes).
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Distance returns the minimum separation between b and o, or 0 when
// they overlap. This is a lower bound for the distance between any
// geometry the boxes enclose, which makes it a safe cheap reject.
func (b AABB) Distance(o AABB) float64 {
	dx := math.Max(0, math.Max(b.Min.X-o.Max.X, o.Min.X-b.Max.X))
	dy := math.Max(0, math.Max(b.Min.Y-o.Max.Y, o.Min.Y-b.Max.Y))
	dz := math.Max(0, math.Max(b.Min.Z-o.Max.Z, o.Min.Z-b.Max.Z))

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
