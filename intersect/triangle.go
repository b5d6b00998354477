package intersect

import (
	"math"

	. "github.com/alexozer/river/internal"

	"github.com/alexozer/river"
	"github.com/ungerik/go3d/float64/vec3"
)

// Get min coordinate on an axis
//
// **params**
// + the mesh points
// + length 3 array of point indices for the triangle
// + index of the axis to test - 0 for x, 1 for y, 2 for z
//
// **returns**
// + the minimum coordinate
func minCoordOnAxis(points []vec3.T, tri *river.Tri, axis int) float64 {
	min := math.Inf(1)

	for _, iPt := range tri {
		if coord := points[iPt][axis]; coord < min {
			min = coord
		}
	}

	return min
}

// Get the unit normal of a triangle from its winding
func TriangleNormal(points []vec3.T, tri *river.Tri) vec3.T {
	v0 := points[tri[0]]
	v1 := points[tri[1]]
	v2 := points[tri[2]]

	v1.Sub(&v0)
	v2.Sub(&v0)
	n := vec3.Cross(&v1, &v2)

	return *n.Normalize()
}

// Intersect a ray with a triangle from either side (Moller-Trumbore)
//
// **params**
// + the ray
// + the mesh points
// + length 3 array of point indices for the triangle
//
// **returns**
// + the intersection, with S and T the barycentric weights of the second
// and third vertex and P the ray parameter
// + false if the ray misses or runs parallel to the triangle
func RayTriangle(ray *Ray, points []vec3.T, tri *river.Tri) (TriRayIntersection, bool) {
	v0 := points[tri[0]]
	v1 := points[tri[1]]
	v2 := points[tri[2]]

	e1 := vec3.Sub(&v1, &v0)
	e2 := vec3.Sub(&v2, &v0)

	p := vec3.Cross(&ray.Dir, &e2)
	det := vec3.Dot(&e1, &p)
	if math.Abs(det) < Epsilon {
		return TriRayIntersection{}, false
	}
	invDet := 1 / det

	s := vec3.Sub(&ray.Origin, &v0)
	u := vec3.Dot(&s, &p) * invDet
	if u < 0 || u > 1 {
		return TriRayIntersection{}, false
	}

	q := vec3.Cross(&s, &e1)
	v := vec3.Dot(&ray.Dir, &q) * invDet
	if v < 0 || u+v > 1 {
		return TriRayIntersection{}, false
	}

	t := vec3.Dot(&e2, &q) * invDet
	if t < 0 {
		return TriRayIntersection{}, false
	}

	return TriRayIntersection{
		Point: ray.At(t),
		S:     u,
		T:     v,
		P:     t,
	}, true
}
