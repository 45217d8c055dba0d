package unigrid_test

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/trigrid/mesh"
	"github.com/katalvlaran/trigrid/unigrid"
)

// ExampleBuild indexes a two-triangle mesh and queries one cell.
func ExampleBuild() {
	m, _ := mesh.New(
		[]r3.Vector{
			{X: 0, Y: 0, Z: 0}, {X: 0.9, Y: 0, Z: 0}, {X: 0, Y: 0.9, Z: 0},
			{X: 2, Y: 2, Z: 2}, {X: 1.1, Y: 2, Z: 2}, {X: 2, Y: 1.1, Z: 2},
		},
		[]mesh.Face{
			{V0: 0, V1: 1, V2: 2, Part: 0},
			{V0: 3, V1: 4, V2: 5, Part: 1},
		},
	)

	g, _ := unigrid.Build(m, 2, 2, 2)
	faces, _ := g.CellPrimitives(g.CellIndex(0, 0, 0))
	fmt.Println("cells:", g.CellCount())
	fmt.Println("faces in cell (0,0,0):", faces)
	// Output:
	// cells: 8
	// faces in cell (0,0,0): [0]
}
