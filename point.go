package river

import (
	"math"

	. "github.com/alexozer/river/internal"

	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

const (
	// Smallest half-width a control point may carry
	MinWidth = 0.2

	// Half-width given to new rivers
	DefaultWidth = 2.0
)

// Local axes of a control point before rotation. The strip lies in the
// XZ plane with Y up; a point with the identity direction faces +Z.
var (
	AxisForward = vec3.T{0, 0, 1}
	AxisBack    = vec3.T{0, 0, -1}
	AxisRight   = vec3.T{1, 0, 0}
	AxisLeft    = vec3.T{-1, 0, 0}
	AxisUp      = vec3.T{0, 1, 0}
)

// ControlPoint is one anchor of a river path.
type ControlPoint struct {
	// position relative to the owning river's origin
	Position vec3.T

	// half-width of the strip on each side
	Width float64

	// rotation whose forward axis is the path direction at this point
	Direction quaternion.T
}

func NewControlPoint(position vec3.T, width float64, direction quaternion.T) ControlPoint {
	return ControlPoint{position, width, direction}.Clamped()
}

// Clamped returns a copy with the width floored to MinWidth and the
// direction normalized. A zero direction becomes the identity. Clamping
// an already clamped point returns it unchanged.
func (this ControlPoint) Clamped() ControlPoint {
	if this.Width < MinWidth || math.IsNaN(this.Width) {
		this.Width = MinWidth
	}

	switch norm := this.Direction.Norm(); {
	case norm < Epsilon:
		this.Direction = quaternion.Ident
	case math.Abs(norm-1) > Epsilon:
		this.Direction.Normalize()
	}

	return this
}

// Axis rotates a local axis by the point's direction
func (this ControlPoint) Axis(local vec3.T) vec3.T {
	return this.Direction.RotatedVec3(&local)
}

func (this ControlPoint) Forward() vec3.T { return this.Axis(AxisForward) }
func (this ControlPoint) Back() vec3.T    { return this.Axis(AxisBack) }
func (this ControlPoint) Right() vec3.T   { return this.Axis(AxisRight) }
func (this ControlPoint) Left() vec3.T    { return this.Axis(AxisLeft) }
func (this ControlPoint) Up() vec3.T      { return this.Axis(AxisUp) }

// Offset returns the position moved distance units along a local axis
//
// **params**
// + a local axis, e.g. AxisLeft
// + the distance to move
//
// **returns**
// + the offset position, in the same frame as Position
func (this ControlPoint) Offset(local vec3.T, distance float64) vec3.T {
	dir := this.Axis(local)
	dir.Scale(distance)

	return vec3.Add(&this.Position, &dir)
}

// LeftEdge and RightEdge are the strip's edge positions at this point
func (this ControlPoint) LeftEdge() vec3.T  { return this.Offset(AxisLeft, this.Width) }
func (this ControlPoint) RightEdge() vec3.T { return this.Offset(AxisRight, this.Width) }

// LookRotation builds a rotation whose forward axis points along dir and
// whose up axis stays in the vertical plane containing dir. The result is
// a yaw about Y followed by a pitch about the local X axis, so there is
// never any roll. A zero vector yields the identity.
func LookRotation(dir vec3.T) quaternion.T {
	horizontal := math.Hypot(dir[0], dir[2])
	if horizontal < Epsilon && math.Abs(dir[1]) < Epsilon {
		return quaternion.Ident
	}

	yaw := math.Atan2(dir[0], dir[2])
	pitch := math.Atan2(-dir[1], horizontal)

	qYaw := quaternion.FromAxisAngle(&AxisUp, yaw)
	qPitch := quaternion.FromAxisAngle(&AxisRight, pitch)

	return quaternion.Mul(&qYaw, &qPitch)
}

// Slerp interpolates two unit rotations along the shorter arc. Nearly
// parallel rotations are blended linearly, where slerp divides by ~0.
func Slerp(a, b quaternion.T, t float64) quaternion.T {
	dot := a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
	if dot < 0 {
		for i := range b {
			b[i] = -b[i]
		}
		dot = -dot
	}

	var q quaternion.T
	if dot > 1-slerpThreshold {
		for i := range q {
			q[i] = Lerp(a[i], b[i], t)
		}
	} else {
		q = quaternion.Slerp(&a, &b, t)
	}

	if q.Norm() < Epsilon {
		return quaternion.Ident
	}
	q.Normalize()

	return q
}

const slerpThreshold = 5e-4
