package river

import (
	. "github.com/alexozer/river/internal"

	"github.com/ungerik/go3d/float64/vec3"
)

// Bezier is a cubic Bezier segment: start point, two handles, end point.
type Bezier struct {
	P0, P1, P2, P3 vec3.T
}

// SegmentBezier builds the curve joining two control points. The handles
// sit half the chord length along a's forward axis and behind b's forward
// axis, so the curve leaves a and enters b along their stored directions.
func SegmentBezier(a, b ControlPoint) Bezier {
	halfDistance := vec3.Distance(&a.Position, &b.Position) / 2

	return Bezier{
		P0: a.Position,
		P1: a.Offset(AxisForward, halfDistance),
		P2: b.Offset(AxisBack, halfDistance),
		P3: b.Position,
	}
}

// Compute a point on the curve
//
// **params**
// + parameter in [0, 1]
//
// **returns**
// + the point; exactly P0 at 0 and P3 at 1
func (this *Bezier) Point(t float64) vec3.T {
	// the endpoints are returned as stored so they survive round-off
	switch t {
	case 0:
		return this.P0
	case 1:
		return this.P3
	}

	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t

	var pt vec3.T
	for i := range pt {
		pt[i] = b0*this.P0[i] + b1*this.P1[i] + b2*this.P2[i] + b3*this.P3[i]
	}

	return pt
}

// Determine the first derivative of the curve
//
// **params**
// + parameter in [0, 1]
//
// **returns**
// + the unnormalized tangent vector
func (this *Bezier) Derivative(t float64) vec3.T {
	mt := 1 - t
	d0 := 3 * mt * mt
	d1 := 6 * mt * t
	d2 := 3 * t * t

	var der vec3.T
	for i := range der {
		der[i] = d0*(this.P1[i]-this.P0[i]) +
			d1*(this.P2[i]-this.P1[i]) +
			d2*(this.P3[i]-this.P2[i])
	}

	return der
}

// Tangent is the normalized derivative. Where the derivative vanishes
// (coincident handles and endpoints) the chord direction is used, and
// AxisForward when the chord is zero as well.
func (this *Bezier) Tangent(t float64) vec3.T {
	der := this.Derivative(t)
	if der.Length() < Tolerance {
		der = vec3.Sub(&this.P3, &this.P0)
		if der.Length() < Tolerance {
			return AxisForward
		}
	}

	return *der.Normalize()
}

// Sample evaluates num points strictly inside the curve at t = i/(num+1),
// i = 1..num
func (this *Bezier) Sample(num int) []CurvePoint {
	if num <= 0 {
		return nil
	}

	step := 1 / float64(num+1)
	samples := make([]CurvePoint, num)
	for i := range samples {
		t := float64(i+1) * step
		samples[i] = CurvePoint{
			U:       t,
			Pt:      this.Point(t),
			Tangent: this.Tangent(t),
		}
	}

	return samples
}

// CurvePoint is a point on a curve with its parameter and unit tangent.
type CurvePoint struct {
	U       float64
	Pt      vec3.T
	Tangent vec3.T
}
