// Package trigrid builds spatial acceleration structures and proximity
// graphs over 3D triangulated objects — the broad-phase backbone for
// collision-aware assembly and ray-based query pipelines.
//
// 🚀 What is trigrid?
//
//	A small, deterministic library that brings together:
//		• mesh/      — the geometry source: flat vertex/face/part arenas + OBJ decoding
//		• geom/      — AABB and triangle distance predicates
//		• unigrid/   — a uniform voxel grid built with a sort-based parallel algorithm
//		• collision/ — ε-proximity graphs over mesh parts, grid-pruned
//		• graph/     — simple undirected graphs + dense adjacency-matrix interchange
//
// ✨ Why choose trigrid?
//
//   - Deterministic – identical input always yields bit-identical grids and graphs
//   - Atomic construction – either a fully valid structure or an error, never both
//   - Safe to share – grids and meshes are immutable after construction
//   - Explicit configuration – resolution and tolerance are arguments, never globals
//
// Typical flow:
//
//	mesh ──► unigrid.Build ──► UniformGrid (cell → primitive lookup)
//	mesh ──► collision.Detect ──► graph.Graph ⇄ adjacency matrix
//
// Dive into the per-package docs for algorithms, options, and complexity
// notes.
//
//	go get github.com/katalvlaran/trigrid
package trigrid
