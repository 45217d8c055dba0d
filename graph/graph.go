package graph

import "sort"

// Graph is an undirected simple graph over nodes 0..n-1. The node set
// is fixed at construction; edges may be added and removed freely. The
// zero value is an empty graph with no nodes; use New for anything
// else. Not safe for concurrent mutation.
type Graph struct {
	adj   []map[int]struct{}
	edges int
}

// New returns a Graph with n isolated nodes.
// Returns ErrBadNodeCount when n < 0.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadNodeCount
	}

	return &Graph{adj: make([]map[int]struct{}, n)}, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// checkNode validates a node id.
func (g *Graph) checkNode(v int) error {
	if v < 0 || v >= len(g.adj) {
		return ErrNodeRange
	}

	return nil
}

// AddEdge inserts the undirected edge {u, v}. Adding an existing edge
// is a no-op.
// Returns ErrNodeRange or ErrSelfLoop on invalid endpoints.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]struct{})
	}
	if g.adj[v] == nil {
		g.adj[v] = make(map[int]struct{})
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return nil
}

// RemoveEdge deletes the undirected edge {u, v}. Removing an absent
// edge is a no-op.
// Returns ErrNodeRange on an invalid endpoint.
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if _, ok := g.adj[u][v]; !ok {
		return nil
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edges--

	return nil
}

// HasEdge reports whether the undirected edge {u, v} exists. Invalid
// ids report false.
func (g *Graph) HasEdge(u, v int) bool {
	if g.checkNode(u) != nil || g.checkNode(v) != nil {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbors of v.
// Returns ErrNodeRange on an invalid id.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkNode(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// Neighbors returns v's neighbors in ascending order.
// Returns ErrNodeRange on an invalid id.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkNode(v); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}
	sort.Ints(out)

	return out, nil
}

// Edge is one undirected edge with U < V.
type Edge struct {
	U, V int
}

// Edges returns every edge exactly once, sorted by (U, V).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u := range g.adj {
		for v := range g.adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{adj: make([]map[int]struct{}, len(g.adj)), edges: g.edges}
	for u, nb := range g.adj {
		if len(nb) == 0 {
			continue
		}
		c.adj[u] = make(map[int]struct{}, len(nb))
		for v := range nb {
			c.adj[u][v] = struct{}{}
		}
	}

	return c
}
