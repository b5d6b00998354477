package river

import (
	"testing"

	"github.com/tdewolff/test"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestSegmentClosestPoint(t *testing.T) {
	a, b := vec3.T{0, 0, 0}, vec3.T{4, 0, 0}

	var tts = []struct {
		pt vec3.T
		u  float64
		at vec3.T
	}{
		{vec3.T{1, 0, 3}, 0.25, vec3.T{1, 0, 0}},
		{vec3.T{-2, 1, 0}, 0, vec3.T{0, 0, 0}},
		{vec3.T{9, 0, -1}, 1, vec3.T{4, 0, 0}},
	}
	for _, tt := range tts {
		cpt := segmentClosestPoint(&tt.pt, &a, &b, 0, 1)
		test.FloatDiff(t, cpt.U, tt.u, 1e-12)
		testVec(t, cpt.Pt, tt.at)
		testVec(t, cpt.Tangent, vec3.T{1, 0, 0})
	}

	cpt := segmentClosestPoint(&vec3.T{1, 1, 1}, &a, &a, 0.2, 0.4)
	test.Float(t, cpt.U, 0.2)
	test.T(t, cpt.Pt, a)
}

func TestRiverNearest(t *testing.T) {
	r := straightRiver(vec3.T{100, 0, 0}, WithSmoothingLevel(1))

	nearest, ok := r.Nearest(vec3.T{103, 0, 4})
	test.That(t, ok)
	testVecTol(t, nearest.Point, vec3.T{103, 0, 0}, 1e-9)
	test.FloatDiff(t, nearest.Distance, 4, 1e-9)
	test.T(t, nearest.Pair, Pair{0, 1})
	test.FloatDiff(t, nearest.U, 0.3, 1e-9)
	test.FloatDiff(t, nearest.Width, 2.6, 1e-9)

	nearest, ok = r.Nearest(vec3.T{120, 0, 0})
	test.That(t, ok)
	testVec(t, nearest.Point, vec3.T{110, 0, 0})
	test.FloatDiff(t, nearest.U, 1, 1e-12)
	test.FloatDiff(t, nearest.Width, 4, 1e-12)

	r.Add(vec3.T{120, 0, 0})
	nearest, _ = r.Nearest(vec3.T{115, 0, -1})
	test.T(t, nearest.Pair, Pair{1, 2})

	_, ok = New(vec3.Zero).Nearest(vec3.Zero)
	test.That(t, !ok)
}
