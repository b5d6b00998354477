package intersect

import "github.com/ungerik/go3d/float64/vec3"

// Ray is a half line starting at Origin. Dir need not be normalized;
// parameters along the ray are in multiples of Dir.
type Ray struct {
	Origin, Dir vec3.T
}

// Point at parameter t
func (this *Ray) At(t float64) vec3.T {
	offset := this.Dir.Scaled(t)
	return vec3.Add(&this.Origin, &offset)
}

// Find the closest point on the ray's supporting line
//
// **params**
// + point to project
//
// **returns**
// + the projected point
func (this *Ray) ClosestPoint(pt vec3.T) vec3.T {
	dir := this.Dir
	if dir.LengthSqr() == 0 {
		return this.Origin
	}
	dir.Normalize()

	o2pt := vec3.Sub(&pt, &this.Origin)
	do2ptr := vec3.Dot(&o2pt, &dir)
	dirScaled := dir.Scaled(do2ptr)

	return vec3.Add(&this.Origin, &dirScaled)
}

// Find the distance of a point to the ray's supporting line
func (this *Ray) DistToPoint(pt vec3.T) float64 {
	d := this.ClosestPoint(pt)

	return vec3.Distance(&d, &pt)
}
