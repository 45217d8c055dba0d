package collision_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigrid/collision"
	"github.com/katalvlaran/trigrid/mesh"
	"github.com/katalvlaran/trigrid/unigrid"
)

// stackedParts builds one unit right triangle per part, part i lifted
// to z = i·gap, so consecutive parts sit exactly gap apart.
func stackedParts(t *testing.T, parts int, gap float64) *mesh.Mesh {
	t.Helper()
	verts := make([]r3.Vector, 0, parts*3)
	faces := make([]mesh.Face, 0, parts)
	for i := 0; i < parts; i++ {
		z := float64(i) * gap
		verts = append(verts,
			r3.Vector{X: 0, Y: 0, Z: z},
			r3.Vector{X: 1, Y: 0, Z: z},
			r3.Vector{X: 0, Y: 1, Z: z},
		)
		faces = append(faces, mesh.Face{V0: i * 3, V1: i*3 + 1, V2: i*3 + 2, Part: i})
	}
	m, err := mesh.New(verts, faces)
	require.NoError(t, err)

	return m
}

func TestDetect_Errors(t *testing.T) {
	m := stackedParts(t, 2, 1)

	_, err := collision.Detect(nil, 0.1)
	require.ErrorIs(t, err, collision.ErrNilMesh)

	_, err = collision.Detect(m, -0.001)
	require.ErrorIs(t, err, collision.ErrNegativeTolerance)
}

func TestDetect_EmptyMesh(t *testing.T) {
	m, err := mesh.New(nil, nil)
	require.NoError(t, err)

	g, err := collision.Detect(m, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
}

// TestDetect_Threshold: two parts exactly 0.5 apart. The test is
// inclusive, so ε = 0.5 connects them and any smaller ε does not.
func TestDetect_Threshold(t *testing.T) {
	m := stackedParts(t, 2, 0.5)

	g, err := collision.Detect(m, 0.5)
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 1), "d = ε must collide")

	g, err = collision.Detect(m, 0.25)
	require.NoError(t, err)
	require.False(t, g.HasEdge(0, 1), "d > ε must not collide")
	require.Equal(t, 0, g.EdgeCount())
}

// TestDetect_Touching: parts sharing an edge collide at ε = 0.
func TestDetect_Touching(t *testing.T) {
	m, err := mesh.New(
		[]r3.Vector{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 1, Y: 1, Z: 0},
		},
		[]mesh.Face{
			{V0: 0, V1: 1, V2: 2, Part: 0},
			{V0: 1, V1: 3, V2: 2, Part: 1},
		},
	)
	require.NoError(t, err)

	g, err := collision.Detect(m, 0)
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 1))
}

// TestDetect_Chain: three stacked parts 0.4 apart with ε = 0.5 connect
// only consecutively; parts 0 and 2 are 0.8 apart.
func TestDetect_Chain(t *testing.T) {
	m := stackedParts(t, 3, 0.4)

	g, err := collision.Detect(m, 0.5)
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(0, 2))
	require.Equal(t, 2, g.EdgeCount())
}

// TestDetect_Symmetric: the exported matrix is symmetric with a zero
// diagonal — a part never collides with itself.
func TestDetect_Symmetric(t *testing.T) {
	m := stackedParts(t, 4, 0.3)

	g, err := collision.Detect(m, 0.35)
	require.NoError(t, err)

	mat, n := g.ToAdjacencyMatrix()
	require.Equal(t, 4, n)
	for i := 0; i < n; i++ {
		require.Zero(t, mat[i*n+i])
		for j := 0; j < n; j++ {
			require.Equal(t, mat[i*n+j], mat[j*n+i], "(%d,%d)", i, j)
		}
	}
}

// TestDetect_SamePartFacesIgnored: faces of one part never produce an
// edge no matter how close they are.
func TestDetect_SamePartFacesIgnored(t *testing.T) {
	m, err := mesh.New(
		[]r3.Vector{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 0.01}, {X: 1, Y: 0, Z: 0.01}, {X: 0, Y: 1, Z: 0.01},
		},
		[]mesh.Face{
			{V0: 0, V1: 1, V2: 2, Part: 0},
			{V0: 3, V1: 4, V2: 5, Part: 0},
		},
	)
	require.NoError(t, err)

	g, err := collision.Detect(m, 1)
	require.NoError(t, err)
	require.Equal(t, 1, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
}

// TestDetect_Deterministic: worker count must not change the result.
func TestDetect_Deterministic(t *testing.T) {
	m := stackedParts(t, 6, 0.3)

	g1, err := collision.Detect(m, 0.35, collision.WithWorkers(1))
	require.NoError(t, err)
	g4, err := collision.Detect(m, 0.35, collision.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, g1.Edges(), g4.Edges())
}

// TestDetect_GridReuse: a prebuilt grid gives the same result, and a
// grid from another mesh is rejected.
func TestDetect_GridReuse(t *testing.T) {
	m := stackedParts(t, 3, 0.4)
	grid, err := unigrid.Build(m, 4, 4, 4)
	require.NoError(t, err)

	fresh, err := collision.Detect(m, 0.5)
	require.NoError(t, err)
	reused, err := collision.Detect(m, 0.5, collision.WithGrid(grid))
	require.NoError(t, err)
	require.Equal(t, fresh.Edges(), reused.Edges())

	other := stackedParts(t, 2, 0.4)
	_, err = collision.Detect(other, 0.5, collision.WithGrid(grid))
	require.ErrorIs(t, err, collision.ErrGridMismatch)
}

// TestDetect_Resolution: an explicit coarse resolution must not change
// the edge set, only the amount of broad-phase pruning.
func TestDetect_Resolution(t *testing.T) {
	m := stackedParts(t, 4, 0.3)

	def, err := collision.Detect(m, 0.35)
	require.NoError(t, err)
	coarse, err := collision.Detect(m, 0.35, collision.WithResolution(1, 1, 1))
	require.NoError(t, err)
	fine, err := collision.Detect(m, 0.35, collision.WithResolution(8, 8, 8))
	require.NoError(t, err)

	require.Equal(t, def.Edges(), coarse.Edges())
	require.Equal(t, def.Edges(), fine.Edges())
}

func TestDefaultResolution(t *testing.T) {
	require.Equal(t, 1, collision.DefaultResolution(0))
	require.Equal(t, 1, collision.DefaultResolution(1))
	require.Equal(t, 3, collision.DefaultResolution(27))
	require.Equal(t, 4, collision.DefaultResolution(28))
	require.Equal(t, 64, collision.DefaultResolution(1_000_000_000))
}
