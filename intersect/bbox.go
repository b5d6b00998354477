package intersect

import (
	"math"

	. "github.com/alexozer/river/internal"

	"github.com/ungerik/go3d/float64/vec3"
)

// Padding applied to boxes in ray tests. A flat strip has a
// zero-height box, which the padding keeps hittable.
const BoundingBoxTolerance = 1e-4

// The zero value for BoundingBox is ready to use
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Adds a point to the bounding box, expanding the bounding box if the point is outside of it.
// If the bounding box is not initialized, this method has that side effect.
//
// **returns**
// + This BoundingBox for chaining
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min, this.Max = *point, *point
		this.initialized = true

		return this
	}

	for i, val := range point[:] {
		this.Max[i] = math.Max(this.Max[i], val)
		this.Min[i] = math.Min(this.Min[i], val)
	}

	return this
}

func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

func (this *BoundingBox) Initialized() bool {
	return this.initialized
}

// Determines if a ray enters the box, padded by tol, at a non-negative
// parameter. This is the slab test.
//
// **returns**
// + the parameter where the ray enters (0 if it starts inside) and
// whether it hits at all
func (this *BoundingBox) IntersectsRay(ray *Ray, tol float64) (float64, bool) {
	if !this.initialized {
		return 0, false
	}

	tmin, tmax := 0.0, math.Inf(1)
	for i := range this.Min {
		lo, hi := this.Min[i]-tol, this.Max[i]+tol

		if math.Abs(ray.Dir[i]) < Epsilon {
			if ray.Origin[i] < lo || ray.Origin[i] > hi {
				return 0, false
			}
			continue
		}

		t0 := (lo - ray.Origin[i]) / ray.Dir[i]
		t1 := (hi - ray.Origin[i]) / ray.Dir[i]
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tmin, tmax = math.Max(tmin, t0), math.Min(tmax, t1)
		if tmin > tmax {
			return 0, false
		}
	}

	return tmin, true
}

// Get longest axis of bounding box
//
// **returns**
// + Index of longest axis
func (this *BoundingBox) LongestAxis() int {
	id, max := 0, 0.0

	for i := range this.Min {
		l := this.AxisLength(i)
		if l > max {
			max = l
			id = i
		}
	}

	return id
}

// Get length of given axis. If axis is out of bounds, returns 0.
func (this *BoundingBox) AxisLength(i int) float64 {
	if i < 0 || i > len(this.Min)-1 {
		return 0
	}
	return math.Abs(this.Min[i] - this.Max[i])
}
