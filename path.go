package river

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Pair names two control points of a Path by index. It is a lookup
// handle and owns nothing; editing the path may invalidate it.
type Pair struct {
	First, Second int
}

// Lower and Upper order the two indices
func (p Pair) Lower() int { return min(p.First, p.Second) }
func (p Pair) Upper() int { return max(p.First, p.Second) }

// Path is the ordered sequence of control points authored by the user.
// Order defines the direction of the river.
type Path struct {
	points []ControlPoint
}

// NewPath returns a path holding one point at the origin, facing +X
// with the given half-width.
func NewPath(width float64) *Path {
	return &Path{
		points: []ControlPoint{
			NewControlPoint(vec3.Zero, width, LookRotation(AxisRight)),
		},
	}
}

// PathOf copies points into a new path, clamping each one.
func PathOf(points ...ControlPoint) *Path {
	path := &Path{points: make([]ControlPoint, len(points))}
	for i, pt := range points {
		path.points[i] = pt.Clamped()
	}

	return path
}

func (this *Path) Len() int {
	return len(this.points)
}

// At returns the point at index i. It panics if i is out of range.
func (this *Path) At(i int) ControlPoint {
	return this.points[i]
}

// Points returns a copy of the sequence
func (this *Path) Points() []ControlPoint {
	return append([]ControlPoint(nil), this.points...)
}

func (this *Path) First() (ControlPoint, bool) {
	if len(this.points) == 0 {
		return ControlPoint{}, false
	}
	return this.points[0], true
}

func (this *Path) Last() (ControlPoint, bool) {
	if len(this.points) == 0 {
		return ControlPoint{}, false
	}
	return this.points[len(this.points)-1], true
}

// Pairs lists every consecutive pair in path order
func (this *Path) Pairs() []Pair {
	if len(this.points) < 2 {
		return nil
	}

	pairs := make([]Pair, len(this.points)-1)
	for i := range pairs {
		pairs[i] = Pair{i, i + 1}
	}

	return pairs
}

// IndexOf returns the index of the first point equal to pt, or -1
func (this *Path) IndexOf(pt ControlPoint) int {
	for i := range this.points {
		if this.points[i] == pt {
			return i
		}
	}

	return -1
}

// Check verifies that both pair members exist and are neighbours
func (this *Path) Check(pair Pair) error {
	for _, i := range [2]int{pair.First, pair.Second} {
		if i < 0 || i >= len(this.points) {
			return fmt.Errorf("pair (%d, %d) on path of %d points: %w",
				pair.First, pair.Second, len(this.points), ErrPairOutOfRange)
		}
	}

	if pair.Upper()-pair.Lower() != 1 {
		return fmt.Errorf("pair (%d, %d): %w", pair.First, pair.Second, ErrPairNotAdjacent)
	}

	return nil
}

func (this *Path) Append(pt ControlPoint) {
	this.points = append(this.points, pt.Clamped())
}

// InsertAt places pt at index i, shifting later points back. i is
// clamped to [0, Len()].
func (this *Path) InsertAt(i int, pt ControlPoint) {
	i = max(0, min(i, len(this.points)))

	this.points = append(this.points, ControlPoint{})
	copy(this.points[i+1:], this.points[i:])
	this.points[i] = pt.Clamped()
}

// Set replaces the point at index i and reports whether i was valid
func (this *Path) Set(i int, pt ControlPoint) bool {
	if i < 0 || i >= len(this.points) {
		return false
	}

	this.points[i] = pt.Clamped()
	return true
}

// Remove deletes the point at index i. Out-of-range indices are ignored.
// The path may become empty.
func (this *Path) Remove(i int) bool {
	if i < 0 || i >= len(this.points) {
		return false
	}

	this.points = append(this.points[:i], this.points[i+1:]...)
	return true
}
