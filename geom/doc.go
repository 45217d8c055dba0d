// Package geom provides the axis-aligned bounding box and the
// closest-point predicates shared by the uniform-grid builder and the
// collision detector.
//
// What:
//
//   - AABB: closed axis-aligned box with union, ε-expansion, overlap and
//     separation-distance queries.
//   - Triangle: three r3.Vector corners with bounds and centroid.
//   - Distance routines up to TriangleDistance, the exact narrow-phase
//     test used for ε-proximity decisions.
//
// Why:
//
//   - Broad-phase pruning: AABB overlap/distance are the cheap rejects.
//   - Narrow phase: TriangleDistance decides edges of the collision graph.
//
// Complexity:
//
//   - Every AABB query: O(1).
//   - ClosestPointTriangle: O(1) (Voronoi-region walk).
//   - TriangleDistance: O(1) (6 segment-vs-triangle tests).
//
// All routines are pure functions over value types; nothing here
// allocates or synchronizes.
package geom
