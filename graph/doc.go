// Package graph provides a minimal undirected simple graph over integer
// node ids, together with a lossless dense adjacency-matrix codec.
//
// 🚀 What:
//   - Graph — fixed node count, unweighted undirected edges, no
//     self-loops, idempotent AddEdge/RemoveEdge.
//   - ToAdjacencyMatrix — row-major 0/1 matrix of size n·n.
//   - FromAdjacencyMatrix — rebuilds a Graph from such a matrix; any
//     nonzero entry at (i,j) OR (j,i) yields the undirected edge {i,j}.
//
// ✨ Why:
//   - The collision detector needs a small symmetric edge set keyed by
//     part index, plus a flat matrix form for export and comparison.
//
// Complexity: AddEdge/RemoveEdge/HasEdge O(1) expected; matrix
// conversion O(n²).
//
// Errors: ErrBadNodeCount, ErrNodeRange, ErrSelfLoop, ErrMatrixSize.
package graph
