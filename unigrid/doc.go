// Package unigrid builds and queries a uniform voxel grid over a
// triangulated mesh: every cell knows which primitives overlap it, with
// O(1) lookup through a prefix-sum boundary table.
//
// What:
//
//   - Build: sort-based construction. Each face emits one (cell, face)
//     pair per grid cell its bounding box overlaps; pairs are sorted by
//     (cell, face) and a boundary table maps each cell to its contiguous
//     slice of the sorted arena.
//   - CellPrimitives: the faces overlapping one cell, O(1).
//   - Validate: re-derives cell assignments for sampled faces and checks
//     them against the boundary table (builder self-test).
//   - Stats: occupancy diagnostics (pair count, max/mean per cell).
//
// Algorithm (Build):
//
//  1. Bounding box of all vertices; cell size = extent / resolution.
//  2. Per face, the inclusive cell-coordinate range its bounds overlap
//     (a degenerate box still lands in the cell of its centroid).
//  3. Emit (cell, face) pairs — parallel across face ranges.
//  4. Sort pairs by cell, ties by face ascending (deterministic).
//  5. Prefix-sum boundary table over the sorted arena.
//
// The sort and the boundary-table build are the only synchronization
// points; the emitted grid is immutable and safe for concurrent readers.
//
// Complexity:
//
//   - Build: O(P log P) for P emitted pairs, memory O(P + cells).
//   - CellPrimitives: O(1).
//   - Validate: O(P + sampled range cells).
//
// Errors:
//
//   - ErrNilMesh: Build/Validate received a nil mesh.
//   - ErrBadResolution: a resolution component is < 1.
//   - ErrCellIndex: cell lookup outside [0, CellCount).
//   - ErrGridMismatch: Validate got a grid built over different geometry.
//   - ErrGridInvalid: Validate found an inconsistent assignment.
package unigrid
