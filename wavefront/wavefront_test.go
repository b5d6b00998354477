package wavefront

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexozer/river"
	"github.com/tdewolff/test"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestWrite(t *testing.T) {
	mesh := &river.Mesh{
		Faces:   []river.Tri{{0, 2, 1}, {2, 3, 1}},
		Points:  []vec3.T{{0, 0, 2}, {0, 0, -2}, {10, 0, 2}, {10, 0, -2}},
		Normals: []vec3.T{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
		UVs:     []river.UV{{0, -0.1}, {0, 0.1}, {0.5, -0.1}, {0.5, 0.1}},
	}

	var buf bytes.Buffer
	test.Error(t, Write(&buf, mesh, "river"))
	test.String(t, buf.String(), `o river
v 0 0 2
v 0 0 -2
v 10 0 2
v 10 0 -2
vt 0 -0.1
vt 0 0.1
vt 0.5 -0.1
vt 0.5 0.1
vn 0 1 0
vn 0 1 0
vn 0 1 0
vn 0 1 0
f 1/1/1 3/3/3 2/2/2
f 3/3/3 4/4/4 2/2/2
`)
}

func TestWriteRiver(t *testing.T) {
	r := river.New(vec3.Zero)
	r.Add(vec3.T{10, 0, 0})
	r.Add(vec3.T{20, 0, 5})
	mesh := r.Mesh()

	var buf bytes.Buffer
	test.Error(t, Write(&buf, mesh, ""))

	counts := map[string]int{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		counts[strings.Fields(line)[0]]++
	}
	test.T(t, counts, map[string]int{
		"v":  mesh.VertexCount(),
		"vt": mesh.VertexCount(),
		"vn": mesh.VertexCount(),
		"f":  mesh.TriangleCount(),
	})
}

func TestWriteError(t *testing.T) {
	mesh := river.New(vec3.Zero).Mesh()
	err := Write(test.NewErrorWriter(0), mesh, "river")
	test.T(t, err, test.ErrPlain)
}
