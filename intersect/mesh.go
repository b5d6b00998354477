package intersect

import (
	"sort"

	"github.com/alexozer/river"
	"github.com/ungerik/go3d/float64/vec3"
)

type Mesh river.Mesh

// Form axis-aligned bounding box from triangles of mesh
//
// **params**
// + face indices of the mesh to include in the bounding box
//
// **returns**
// + a BoundingBox containing the faces
func (this *Mesh) BoundingBox(faceIndices []int) BoundingBox {
	bb := BoundingBox{}

	for _, iFace := range faceIndices {
		for _, iPt := range this.Faces[iFace] {
			bb.Add(&this.Points[iPt])
		}
	}

	return bb
}

type faceCoord struct {
	FaceIndex int
	Coord     float64
}

// Sort particular faces of a mesh on the longest axis
//
// **params**
// + bounding box containing the faces
// + the indices of the mesh faces to inspect
//
// **returns**
// + the face indices ordered by their minimum coordinate on that axis
func (this *Mesh) SortedTrianglesOnLongestAxis(bbox BoundingBox, faceIndices []int) []int {
	longAxis := bbox.LongestAxis()

	minCoords := make([]faceCoord, len(faceIndices))
	for i, faceIndex := range faceIndices {
		minCoords[i] = faceCoord{faceIndex, minCoordOnAxis(this.Points, &this.Faces[faceIndex], longAxis)}
	}

	sort.SliceStable(minCoords, func(i, j int) bool {
		return minCoords[i].Coord < minCoords[j].Coord
	})

	sortedFaceIndices := make([]int, len(minCoords))
	for i, fc := range minCoords {
		sortedFaceIndices[i] = fc.FaceIndex
	}

	return sortedFaceIndices
}

// Intersect a ray with every face of the mesh
//
// **returns**
// + the intersections ordered by distance along the ray
func (this *Mesh) IntersectRay(ray *Ray) []RayMeshIntersection {
	hits := rayTree(ray, newLazyMeshBoundingBoxTree(this, nil), nil)

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].P < hits[j].P
	})

	return hits
}

// Interpolate the vertex UVs of a face at a point on it
//
// **params**
// + index of the face
// + a point lying on the face
//
// **returns**
// + the texture coordinate at the point
func (this *Mesh) TriangleUvFromPoint(faceIndex int, f *vec3.T) river.UV {
	tri := this.Faces[faceIndex]
	if len(this.UVs) != len(this.Points) {
		return river.UV{}
	}

	p0 := this.Points[tri[0]]
	p1 := this.Points[tri[1]]
	p2 := this.Points[tri[2]]

	uv0 := this.UVs[tri[0]]
	uv1 := this.UVs[tri[1]]
	uv2 := this.UVs[tri[2]]

	f0 := vec3.Sub(&p0, f)
	f1 := vec3.Sub(&p1, f)
	f2 := vec3.Sub(&p2, f)

	// calculate the areas and factors (order of parameters doesn't matter):
	p1.Sub(&p0)
	p2.Sub(&p0)
	aVec := vec3.Cross(&p1, &p2)
	a := aVec.Length()
	if a == 0 {
		return uv0
	}

	a0Vec := vec3.Cross(&f1, &f2)
	a1Vec := vec3.Cross(&f2, &f0)
	a2Vec := vec3.Cross(&f0, &f1)

	a0 := a0Vec.Length() / a
	a1 := a1Vec.Length() / a
	a2 := a2Vec.Length() / a

	// find the uv corresponding to point f (uv0/uv1/uv2 are associated to p0/p1/p2):
	return river.UV{
		a0*uv0[0] + a1*uv1[0] + a2*uv2[0],
		a0*uv0[1] + a1*uv1[1] + a2*uv2[1],
	}
}
