package intersect

import (
	"math"

	"github.com/alexozer/river"
	"github.com/ungerik/go3d/float64/vec3"
)

// Pick casts a world-space ray at a river's strip and returns the nearest
// hit with the span it falls in. It reports false when the ray misses the
// strip or the river has no faces.
func Pick(r *river.River, ray Ray) (Hit, bool) {
	mesh := r.Mesh()
	if mesh == nil || mesh.IsEmpty() {
		return Hit{}, false
	}

	local := Ray{Origin: r.ToLocal(ray.Origin), Dir: ray.Dir}
	hits := (*Mesh)(mesh).IntersectRay(&local)
	if len(hits) == 0 {
		return Hit{}, false
	}

	nearest := hits[0]
	pair, ok := r.PairAtFace(nearest.FaceIndex)
	if !ok {
		return Hit{}, false
	}

	return Hit{
		Position:  r.ToWorld(nearest.Point),
		Distance:  nearest.P * ray.Dir.Length(),
		FaceIndex: nearest.FaceIndex,
		UV:        nearest.UV,
		Normal:    TriangleNormal(mesh.Points, &mesh.Faces[nearest.FaceIndex]),
		Pair:      pair,
	}, true
}

// PickControlPoint finds the control point whose position passes closest
// to a world-space ray, as when grabbing a handle
//
// **params**
// + the river to search
// + the ray, in world space
// + the largest distance between ray and point that still counts
//
// **returns**
// + the index of the closest point in front of the ray origin and whether
// one lies within radius
func PickControlPoint(r *river.River, ray Ray, radius float64) (int, bool) {
	best, bestDist := -1, math.Inf(1)

	for i, pt := range r.Points() {
		world := r.ToWorld(pt.Position)

		toPoint := vec3.Sub(&world, &ray.Origin)
		if vec3.Dot(&toPoint, &ray.Dir) < 0 {
			continue
		}

		if d := ray.DistToPoint(world); d <= radius && d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, best >= 0
}
