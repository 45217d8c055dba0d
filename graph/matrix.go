package graph

// ToAdjacencyMatrix flattens g into a row-major n·n matrix of 0/1
// entries, M[i·n+j] = 1 iff the edge {i, j} exists. The diagonal is
// always zero and the matrix is symmetric by construction.
// Complexity: O(n²).
func (g *Graph) ToAdjacencyMatrix() ([]int, int) {
	n := len(g.adj)
	m := make([]int, n*n)
	for u := range g.adj {
		for v := range g.adj[u] {
			m[u*n+v] = 1
		}
	}

	return m, n
}

// FromAdjacencyMatrix builds a Graph from a row-major n·n matrix. Any
// nonzero entry at (i, j) or (j, i) produces the undirected edge
// {i, j}, so an asymmetric input is read with OR semantics. Nonzero
// diagonal entries are ignored rather than rejected: a node cannot
// collide with itself.
// Returns ErrBadNodeCount or ErrMatrixSize on invalid input.
// Complexity: O(n²).
func FromAdjacencyMatrix(m []int, n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadNodeCount
	}
	if len(m) != n*n {
		return nil, ErrMatrixSize
	}
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i*n+j] != 0 || m[j*n+i] != 0 {
				if err := g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
