// Package wavefront writes river meshes as Wavefront OBJ text.
package wavefront

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/alexozer/river"
)

// Write emits one v, vn and vt line per vertex followed by one f line per
// face. Faces reference position, texture coordinate and normal with the
// same 1-based index. An optional object name is written as an o line.
func Write(w io.Writer, mesh *river.Mesh, name string) error {
	bw := bufio.NewWriter(w)

	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for _, p := range mesh.Points {
		fmt.Fprintf(bw, "v %s %s %s\n", num(p[0]), num(p[1]), num(p[2]))
	}
	for _, uv := range mesh.UVs {
		fmt.Fprintf(bw, "vt %s %s\n", num(uv[0]), num(uv[1]))
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", num(n[0]), num(n[1]), num(n[2]))
	}

	for _, face := range mesh.Faces {
		a, b, c := face[0]+1, face[1]+1, face[2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
