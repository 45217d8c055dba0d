package graph

import "sort"

// ConnectedComponents partitions the nodes into maximal connected sets
// using breadth-first traversal. Components are ordered by their
// smallest node id and each component's nodes are ascending; isolated
// nodes form singleton components. For a collision graph this groups
// parts into contact clusters.
// Complexity: O(n + edges).
func (g *Graph) ConnectedComponents() [][]int {
	n := len(g.adj)
	visited := make([]bool, n)
	var comps [][]int
	queue := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue = append(queue[:0], start)
		comp := []int{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for v := range g.adj[u] {
				if visited[v] {
					continue
				}
				visited[v] = true
				queue = append(queue, v)
				comp = append(comp, v)
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}
