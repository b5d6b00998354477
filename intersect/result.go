package intersect

import (
	"github.com/alexozer/river"
	"github.com/ungerik/go3d/float64/vec3"
)

type (
	TriRayIntersection struct {
		Point vec3.T  // where the intersection took place
		S     float64 // the u param where u is the axis from v0 to v1
		T     float64 // the v param where v is the axis from v0 to v2
		P     float64 // the parameter along the ray
	}

	RayMeshIntersection struct {
		Point     vec3.T
		P         float64
		FaceIndex int
		UV        river.UV // texture coordinate at Point
	}

	// Hit is a ray resolved against a river's strip.
	Hit struct {
		// world position of the hit
		Position vec3.T

		// distance from the ray origin
		Distance float64

		FaceIndex int
		UV        river.UV

		// unit normal of the face that was hit
		Normal vec3.T

		// control points of the span that was hit
		Pair river.Pair
	}
)
