// Package collision builds an ε-proximity graph over the parts of a
// triangulated mesh: one node per part, and an edge between two parts
// whenever some face of one lies within distance ε of some face of the
// other (d ≤ ε, inclusive; ε = 0 detects touching or intersecting
// parts).
//
// 🚀 What:
//   - Detect — runs the full pipeline: uniform-grid broad phase over
//     the mesh's faces, then exact triangle–triangle distance tests on
//     the surviving candidate pairs, merged into a graph.Graph.
//   - DefaultResolution — the grid resolution heuristic used when the
//     caller does not supply one.
//
// ✨ Why:
//   - Brute force is O(F²) exact tests; the grid prunes candidates to
//     faces whose ε-expanded bounding boxes share a cell, which is
//     near-linear for evenly distributed geometry.
//
// Pipeline:
//
//	mesh ──► unigrid.Build ──► per-face cell query ──► AABB reject
//	     ──► geom.TriangleDistance ≤ ε ──► graph.AddEdge(partA, partB)
//
// The result is symmetric by construction and deterministic: the same
// mesh and ε always produce the same edge set, regardless of worker
// count.
//
// Errors: ErrNegativeTolerance, ErrNilMesh, ErrGridMismatch.
package collision
