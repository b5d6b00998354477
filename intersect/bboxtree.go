package intersect

type BoundingBoxTree interface {
	BoundingBox() BoundingBox
	Empty() bool
	Indivisible() bool
	Split() (BoundingBoxTree, BoundingBoxTree)
	Yield() interface{}
}

// lazyMeshBoundingBoxTree splits a mesh's faces on demand: each split
// sorts the faces along the box's longest axis and halves them.
type lazyMeshBoundingBoxTree struct {
	mesh            *Mesh
	faceIndices     []int
	boundingBox     BoundingBox
	bboxInitialized bool
}

func newLazyMeshBoundingBoxTree(mesh *Mesh, faceIndices []int) *lazyMeshBoundingBoxTree {
	this := new(lazyMeshBoundingBoxTree)

	this.mesh = mesh

	if faceIndices == nil {
		faceIndices = make([]int, len(mesh.Faces))
		for i := range faceIndices {
			faceIndices[i] = i
		}
	}
	this.faceIndices = faceIndices

	return this
}

func (this *lazyMeshBoundingBoxTree) BoundingBox() BoundingBox {
	if !this.bboxInitialized {
		this.boundingBox = this.mesh.BoundingBox(this.faceIndices)
		this.bboxInitialized = true
	}

	return this.boundingBox
}

func (this *lazyMeshBoundingBoxTree) Split() (BoundingBoxTree, BoundingBoxTree) {
	as := this.mesh.SortedTrianglesOnLongestAxis(this.BoundingBox(), this.faceIndices)

	halfLen := len(as) / 2
	l, r := as[:halfLen], as[halfLen:]

	return newLazyMeshBoundingBoxTree(this.mesh, l),
		newLazyMeshBoundingBoxTree(this.mesh, r)
}

// Yield returns the face index of an indivisible tree
func (this *lazyMeshBoundingBoxTree) Yield() interface{} {
	return this.faceIndices[0]
}

func (this *lazyMeshBoundingBoxTree) Indivisible() bool {
	return len(this.faceIndices) == 1
}

func (this *lazyMeshBoundingBoxTree) Empty() bool {
	return len(this.faceIndices) == 0
}

// Walk the tree, descending only into boxes the ray enters, and collect
// the intersections with the leaf faces
func rayTree(ray *Ray, tree BoundingBoxTree, hits []RayMeshIntersection) []RayMeshIntersection {
	if tree.Empty() {
		return hits
	}

	bbox := tree.BoundingBox()
	if _, ok := bbox.IntersectsRay(ray, BoundingBoxTolerance); !ok {
		return hits
	}

	if tree.Indivisible() {
		mesh := tree.(*lazyMeshBoundingBoxTree).mesh
		faceIndex := tree.Yield().(int)

		if inter, ok := RayTriangle(ray, mesh.Points, &mesh.Faces[faceIndex]); ok {
			hits = append(hits, RayMeshIntersection{
				Point:     inter.Point,
				P:         inter.P,
				FaceIndex: faceIndex,
				UV:        mesh.TriangleUvFromPoint(faceIndex, &inter.Point),
			})
		}
		return hits
	}

	left, right := tree.Split()
	hits = rayTree(ray, left, hits)
	return rayTree(ray, right, hits)
}
