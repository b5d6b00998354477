package river

import (
	"math"

	. "github.com/alexozer/river/internal"

	"github.com/ungerik/go3d/float64/vec3"
)

// Find the closest point on a segment
//
// **params**
// + point to project
// + first point of segment
// + second point of segment
// + first param of segment
// + second param of segment
//
// **returns**
// + the closest point, its param and the segment direction
func segmentClosestPoint(pt, segpt0, segpt1 *vec3.T, u0, u1 float64) CurvePoint {
	dif := vec3.Sub(segpt1, segpt0)
	l := dif.Length()

	if l < Epsilon {
		return CurvePoint{U: u0, Pt: *segpt0, Tangent: AxisForward}
	}

	r := dif.Normalize()
	o2pt := vec3.Sub(pt, segpt0)
	do2ptr := vec3.Dot(&o2pt, r)

	if do2ptr < 0 {
		return CurvePoint{U: u0, Pt: *segpt0, Tangent: *r}
	} else if do2ptr > l {
		return CurvePoint{U: u1, Pt: *segpt1, Tangent: *r}
	}

	offset := r.Scaled(do2ptr)
	return CurvePoint{
		U:       u0 + (u1-u0)*do2ptr/l,
		Pt:      vec3.Add(segpt0, &offset),
		Tangent: *r,
	}
}

// NearestPoint is the result of a closest point query on the centerline.
type NearestPoint struct {
	// closest centerline point, in world space
	Point vec3.T

	// distance from the query position to Point
	Distance float64

	// the control points of the span holding Point, First before Second
	Pair Pair

	// parameter of Point within the span, 0 at First and 1 at Second
	U float64

	// half-width of the strip at Point
	Width float64
}

// Nearest finds the point of the refined centerline closest to a world
// position. It fails on a river with fewer than two points.
func (this *River) Nearest(world vec3.T) (NearestPoint, bool) {
	refined := this.RefinedPoints()
	if len(refined) < 2 {
		return NearestPoint{}, false
	}

	perSpan := this.config.SmoothingLevel + 1
	local := this.ToLocal(world)

	best := NearestPoint{Distance: math.Inf(1)}
	for k := 0; k < len(refined)-1; k++ {
		span := k / perSpan
		step := k % perSpan
		u0 := float64(step) / float64(perSpan)
		u1 := float64(step+1) / float64(perSpan)

		a, b := &refined[k], &refined[k+1]
		cpt := segmentClosestPoint(&local, &a.Position, &b.Position, u0, u1)

		if d := vec3.Distance(&cpt.Pt, &local); d < best.Distance {
			s := (cpt.U - u0) / (u1 - u0)
			best = NearestPoint{
				Point:    this.ToWorld(cpt.Pt),
				Distance: d,
				Pair:     Pair{span, span + 1},
				U:        cpt.U,
				Width:    Lerp(a.Width, b.Width, s),
			}
		}
	}

	return best, true
}
