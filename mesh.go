package river

import "github.com/ungerik/go3d/float64/vec3"

type Tri [3]int

type UV [2]float64

// Mesh holds parallel vertex buffers and triangle faces indexing them.
type Mesh struct {
	Faces   []Tri
	Points  []vec3.T
	Normals []vec3.T
	UVs     []UV

	// arc length of the strip's centerline
	CenterLength float64
}

func newMesh(numPoints int) *Mesh {
	numFaces := 0
	if numPoints > 1 {
		numFaces = 2 * (numPoints - 1)
	}

	return &Mesh{
		Faces:   make([]Tri, 0, numFaces),
		Points:  make([]vec3.T, 0, 2*numPoints),
		Normals: make([]vec3.T, 0, 2*numPoints),
		UVs:     make([]UV, 0, 2*numPoints),
	}
}

func (this *Mesh) VertexCount() int {
	return len(this.Points)
}

func (this *Mesh) TriangleCount() int {
	return len(this.Faces)
}

// IsEmpty reports whether the mesh has no renderable triangles
func (this *Mesh) IsEmpty() bool {
	return len(this.Faces) == 0
}

// Indices flattens the faces into groups of three vertex indices
func (this *Mesh) Indices() []int {
	indices := make([]int, 0, 3*len(this.Faces))
	for _, face := range this.Faces {
		indices = append(indices, face[:]...)
	}

	return indices
}

// stripBuilder accumulates the running UV offsets along the three rails
// of the strip while points are appended in order.
type stripBuilder struct {
	mesh    *Mesh
	uvScale float64

	centerOffset, leftOffset, rightOffset float64

	prev                *ControlPoint
	prevLeft, prevRight vec3.T
}

// Append one refined point: its two edge vertices, their normals and
// UVs, and the quad joining it to the previous point.
func (this *stripBuilder) add(pt *ControlPoint) {
	left, right := pt.LeftEdge(), pt.RightEdge()

	if this.prev != nil {
		this.centerOffset += vec3.Distance(&this.prev.Position, &pt.Position)
		this.leftOffset += vec3.Distance(&this.prevLeft, &left)
		this.rightOffset += vec3.Distance(&this.prevRight, &right)
	}

	index := len(this.mesh.Points)
	mesh := this.mesh

	mesh.Points = append(mesh.Points, left, right)

	// the strip is treated as flat: normals point up whatever the tilt
	mesh.Normals = append(mesh.Normals, AxisUp, AxisUp)

	// U runs along each edge so the texture does not shear on bends,
	// V is the signed distance from the centerline
	mesh.UVs = append(mesh.UVs,
		UV{this.leftOffset * this.uvScale, -pt.Width * this.uvScale},
		UV{this.rightOffset * this.uvScale, pt.Width * this.uvScale},
	)

	if this.prev != nil {
		leftPrev, rightPrev := index-2, index-1
		leftCur, rightCur := index, index+1

		mesh.Faces = append(mesh.Faces,
			Tri{leftPrev, leftCur, rightPrev},
			Tri{leftCur, rightCur, rightPrev},
		)
	}

	this.prev = pt
	this.prevLeft, this.prevRight = left, right
	mesh.CenterLength = this.centerOffset
}

// BuildMesh turns a refined point sequence into a quad strip
//
// **params**
// + the refined points, in path order
// + scale applied to both UV coordinates
//
// **returns**
// + a new Mesh with 2 vertices per point and 2 faces per consecutive pair.
// A single point yields 2 vertices and no faces; no points an empty mesh.
func BuildMesh(points []ControlPoint, uvScale float64) *Mesh {
	builder := stripBuilder{
		mesh:    newMesh(len(points)),
		uvScale: uvScale,
	}

	for i := range points {
		builder.add(&points[i])
	}

	return builder.mesh
}

// GenerateMesh runs the whole pipeline on a path: refine with the
// configured smoothing level, then build the strip.
func GenerateMesh(path *Path, opts ...Option) *Mesh {
	cfg := NewConfig(opts...)
	return generateMesh(path.Points(), cfg)
}

func generateMesh(points []ControlPoint, cfg Config) *Mesh {
	refined := Refine(points, cfg.SmoothingLevel)
	mesh := BuildMesh(refined, cfg.UVScale)

	Logger().Debug("river mesh generated",
		"points", len(points),
		"refined", len(refined),
		"vertices", mesh.VertexCount(),
		"faces", mesh.TriangleCount(),
	)

	return mesh
}
