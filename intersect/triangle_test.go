package intersect

import (
	"testing"

	"github.com/alexozer/river"
	"github.com/tdewolff/test"
	"github.com/ungerik/go3d/float64/vec3"
)

var unitTriangle = []vec3.T{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}}

func TestTriangleNormal(t *testing.T) {
	tri := river.Tri{0, 1, 2}
	test.T(t, TriangleNormal(unitTriangle, &tri), vec3.T{0, 1, 0})

	flipped := river.Tri{0, 2, 1}
	test.T(t, TriangleNormal(unitTriangle, &flipped), vec3.T{0, -1, 0})
	test.Float(t, minCoordOnAxis(unitTriangle, &tri, 0), 0)
}

func TestRayTriangle(t *testing.T) {
	tri := river.Tri{0, 1, 2}

	var tts = []struct {
		ray Ray
		hit bool
		at  vec3.T
		p   float64
	}{
		{Ray{vec3.T{0.25, 2, 0.25}, vec3.T{0, -1, 0}}, true, vec3.T{0.25, 0, 0.25}, 2},
		{Ray{vec3.T{0.25, -2, 0.25}, vec3.T{0, 2, 0}}, true, vec3.T{0.25, 0, 0.25}, 1},
		{Ray{vec3.T{0.75, 2, 0.75}, vec3.T{0, -1, 0}}, false, vec3.T{}, 0},
		{Ray{vec3.T{0.25, 2, 0.25}, vec3.T{0, 1, 0}}, false, vec3.T{}, 0},
		{Ray{vec3.T{-1, 0, 0.25}, vec3.T{1, 0, 0}}, false, vec3.T{}, 0},
	}
	for _, tt := range tts {
		inter, ok := RayTriangle(&tt.ray, unitTriangle, &tri)
		test.T(t, ok, tt.hit, tt.ray)
		if ok {
			test.T(t, inter.Point, tt.at)
			test.Float(t, inter.P, tt.p)
		}
	}
}

func TestRay(t *testing.T) {
	ray := Ray{vec3.T{0, 1, 0}, vec3.T{2, 0, 0}}
	test.T(t, ray.At(1.5), vec3.T{3, 1, 0})
	test.T(t, ray.ClosestPoint(vec3.T{5, 4, 0}), vec3.T{5, 1, 0})
	test.Float(t, ray.DistToPoint(vec3.T{5, 4, 0}), 3.0)

	zero := Ray{Origin: vec3.T{1, 2, 3}}
	test.T(t, zero.ClosestPoint(vec3.T{5, 4, 0}), vec3.T{1, 2, 3})
}
