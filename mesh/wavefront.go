package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// DecodeOBJ reads a wavefront OBJ description and builds a Mesh.
//
// Supported records:
//
//   - "v x y z"  — vertex position (extra components ignored)
//   - "f a b c…" — face; polygons are fan-triangulated, index tokens may
//     carry /vt/vn suffixes, negative indices are relative to the
//     vertices read so far (OBJ convention)
//   - "o name" / "g name" — delimit parts: faces after a marker belong
//     to a new part; faces before any marker belong to part 0
//   - everything else (vn, vt, usemtl, mtllib, s, comments) is skipped
//
// Returns ErrMalformedOBJ (with the offending line number) for records
// that cannot be parsed, and the New validation errors for structurally
// inconsistent geometry.
// Complexity: O(bytes read).
func DecodeOBJ(r io.Reader) (*Mesh, error) {
	var (
		vertices []r3.Vector
		faces    []Face
		part     int
		started  bool // at least one face decoded
		pending  bool // an o/g marker opens a new part on the next face
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates: %w", line, ErrMalformedOBJ)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				c, err := strconv.ParseFloat(fields[1+i], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %q: %w", line, fields[1+i], ErrMalformedOBJ)
				}
				coords[i] = c
			}
			vertices = append(vertices, r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices: %w", line, ErrMalformedOBJ)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				v, err := parseFaceIndex(tok, len(vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx = append(idx, v)
			}
			if pending {
				part++
				pending = false
			}
			started = true
			// Fan triangulation around the first vertex.
			for i := 1; i+1 < len(idx); i++ {
				faces = append(faces, Face{V0: idx[0], V1: idx[i], V2: idx[i+1], Part: part})
			}

		case "o", "g":
			if started {
				pending = true
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: reading OBJ: %w", err)
	}

	return New(vertices, faces)
}

// LoadOBJ decodes the OBJ file at path.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeOBJ(f)
}

// parseFaceIndex resolves one face index token ("7", "7/1", "7//3",
// "-2") into a zero-based vertex index given the vertices read so far.
func parseFaceIndex(tok string, vertexCount int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("face index %q: %w", tok, ErrMalformedOBJ)
	}
	if v < 0 {
		return vertexCount + v, nil
	}

	return v - 1, nil
}
