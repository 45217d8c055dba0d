// Package mesh materializes the geometry source consumed by the grid
// builder and the collision detector: an immutable arena of vertex
// positions and triangular faces, each face tagged with the id of the
// part it belongs to.
//
// What:
//
//   - Mesh: flat []r3.Vector vertex arena + []Face index triples.
//   - New validates and deep-copies its inputs; a Mesh is immutable and
//     safe for concurrent readers from then on.
//   - DecodeOBJ / LoadOBJ: wavefront OBJ ingestion, with `o`/`g` records
//     delimiting parts.
//
// Invariants (enforced at construction):
//
//   - Every vertex index referenced by a face is in [0, VertexCount).
//   - Part ids are contiguous non-negative integers starting at 0: every
//     id in [0, PartCount) is referenced by at least one face.
//   - A mesh with zero faces is valid (the degenerate empty object).
//
// Errors:
//
//   - ErrVertexIndex: a face references a vertex outside the arena.
//   - ErrPartRange: a part id is negative or the id range has gaps.
//   - ErrMalformedOBJ: an OBJ record could not be parsed.
//
// Complexity: New is O(V+F); all accessors are O(1).
package mesh
