package mesh_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trigrid/mesh"
)

func quadVertices() []r3.Vector {
	return []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
}

// TestNew_Valid verifies accessors and derived state on a two-face,
// two-part mesh.
func TestNew_Valid(t *testing.T) {
	m, err := mesh.New(quadVertices(), []mesh.Face{
		{V0: 0, V1: 1, V2: 2, Part: 0},
		{V0: 0, V1: 2, V2: 3, Part: 1},
	})
	require.NoError(t, err)

	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 2, m.FaceCount())
	require.Equal(t, 2, m.PartCount())
	require.Equal(t, 1, m.Part(1))

	tr := m.Triangle(0)
	require.Equal(t, r3.Vector{X: 0, Y: 0, Z: 0}, tr.A)
	require.Equal(t, r3.Vector{X: 1, Y: 0, Z: 0}, tr.B)
	require.Equal(t, r3.Vector{X: 1, Y: 1, Z: 0}, tr.C)

	b := m.Bounds()
	require.Equal(t, r3.Vector{X: 0, Y: 0, Z: 0}, b.Min)
	require.Equal(t, r3.Vector{X: 1, Y: 1, Z: 0}, b.Max)
}

// TestNew_Errors verifies the construction-time validation sentinels.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		faces []mesh.Face
		err   error
	}{
		{"VertexTooLarge", []mesh.Face{{V0: 0, V1: 1, V2: 4, Part: 0}}, mesh.ErrVertexIndex},
		{"VertexNegative", []mesh.Face{{V0: -1, V1: 1, V2: 2, Part: 0}}, mesh.ErrVertexIndex},
		{"PartNegative", []mesh.Face{{V0: 0, V1: 1, V2: 2, Part: -1}}, mesh.ErrPartRange},
		{"PartGap", []mesh.Face{
			{V0: 0, V1: 1, V2: 2, Part: 0},
			{V0: 0, V1: 2, V2: 3, Part: 2},
		}, mesh.ErrPartRange},
		{"PartZeroMissing", []mesh.Face{{V0: 0, V1: 1, V2: 2, Part: 1}}, mesh.ErrPartRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.New(quadVertices(), tc.faces)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_Empty verifies the degenerate empty object is valid.
func TestNew_Empty(t *testing.T) {
	m, err := mesh.New(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.VertexCount())
	require.Equal(t, 0, m.FaceCount())
	require.Equal(t, 0, m.PartCount())
	require.True(t, m.Bounds().IsEmpty())
}

// TestNew_Immutable verifies New deep-copies its inputs: mutating the
// caller's slices afterwards must not affect the mesh.
func TestNew_Immutable(t *testing.T) {
	verts := quadVertices()
	faces := []mesh.Face{{V0: 0, V1: 1, V2: 2, Part: 0}}
	m, err := mesh.New(verts, faces)
	require.NoError(t, err)

	verts[0] = r3.Vector{X: 99, Y: 99, Z: 99}
	faces[0].Part = 7

	require.Equal(t, r3.Vector{X: 0, Y: 0, Z: 0}, m.Vertex(0))
	require.Equal(t, 0, m.Part(0))
}
