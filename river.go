package river

import (
	"fmt"

	. "github.com/alexozer/river/internal"

	"github.com/ungerik/go3d/float64/vec3"
)

// River owns a control point path placed at a world origin and keeps
// the strip mesh generated from it. Every edit regenerates the whole
// mesh. A River is not safe for concurrent use.
type River struct {
	// world position of the owning object; control points are relative to it
	Origin vec3.T

	config Config
	path   *Path
	mesh   *Mesh
}

// New creates a river at origin holding a single default point.
func New(origin vec3.T, opts ...Option) *River {
	cfg := NewConfig(opts...)
	return FromPath(origin, NewPath(cfg.Width), WithConfig(cfg))
}

// FromPath creates a river around an existing path. The path is owned by
// the river from then on.
func FromPath(origin vec3.T, path *Path, opts ...Option) *River {
	this := &River{
		Origin: origin,
		config: NewConfig(opts...),
		path:   path,
	}
	this.Regenerate()

	return this
}

func (this *River) Config() Config {
	return this.config
}

// Configure applies opts on top of the current settings and regenerates.
func (this *River) Configure(opts ...Option) *Mesh {
	this.config = NewConfig(append([]Option{WithConfig(this.config)}, opts...)...)
	return this.Regenerate()
}

func (this *River) Len() int {
	return this.path.Len()
}

func (this *River) At(i int) ControlPoint {
	return this.path.At(i)
}

// Points returns a copy of the sparse control points
func (this *River) Points() []ControlPoint {
	return this.path.Points()
}

// RefinedPoints returns the smoothed sequence the current mesh is built from
func (this *River) RefinedPoints() []ControlPoint {
	return Refine(this.path.points, this.config.SmoothingLevel)
}

// Mesh returns the mesh generated by the last edit
func (this *River) Mesh() *Mesh {
	return this.mesh
}

// Regenerate rebuilds the mesh from the current path and settings.
func (this *River) Regenerate() *Mesh {
	this.mesh = generateMesh(this.path.points, this.config)
	return this.mesh
}

func (this *River) ToLocal(world vec3.T) vec3.T {
	return vec3.Sub(&world, &this.Origin)
}

func (this *River) ToWorld(local vec3.T) vec3.T {
	return vec3.Add(&local, &this.Origin)
}

// Add appends a point at a world position after the last point. The new
// point keeps the last point's height and width and faces along the
// horizontal direction from the last point; if there is none, it keeps
// the last point's direction.
func (this *River) Add(world vec3.T) {
	last, ok := this.path.Last()
	if !ok {
		this.path.Append(NewControlPoint(this.ToLocal(world), this.config.Width, LookRotation(AxisRight)))
		this.Regenerate()
		return
	}

	lastWorld := this.ToWorld(last.Position)
	offset := vec3.Sub(&world, &lastWorld)
	offset[1] = 0

	direction := last.Direction
	if offset.Length() > Tolerance {
		direction = LookRotation(offset)
	}

	target := this.ToLocal(world)
	target[1] = last.Position[1]

	this.path.Append(ControlPoint{
		Position:  target,
		Width:     last.Width,
		Direction: direction,
	})
	this.Regenerate()
}

// Insert adds a point at a world position between the two points of pair.
// Its direction and width are halfway between theirs. The point lands at
// the larger of the two indices, i.e. between them.
//
// Insert fails without changing the path when the pair is out of range
// or its points are not neighbours.
func (this *River) Insert(pair Pair, world vec3.T) error {
	if err := this.path.Check(pair); err != nil {
		Logger().Warn("river insert rejected", "first", pair.First, "second", pair.Second, "err", err)
		return fmt.Errorf("insert control point: %w", err)
	}

	first, second := this.path.At(pair.First), this.path.At(pair.Second)

	this.path.InsertAt(pair.Upper(), ControlPoint{
		Position:  this.ToLocal(world),
		Width:     Lerp(first.Width, second.Width, 0.5),
		Direction: Slerp(first.Direction, second.Direction, 0.5),
	})
	this.Regenerate()

	return nil
}

// Remove deletes the point at index i. It refuses to remove the only
// remaining point and ignores indices out of range.
func (this *River) Remove(i int) bool {
	if this.path.Len() <= 1 || !this.path.Remove(i) {
		return false
	}

	this.Regenerate()
	return true
}

// SetPoint replaces the point at index i, as when a handle is dragged.
func (this *River) SetPoint(i int, pt ControlPoint) bool {
	if !this.path.Set(i, pt) {
		return false
	}

	this.Regenerate()
	return true
}

// PairAtFace maps a face of the current mesh to the control points of the
// span it belongs to. First is the control point at or after the face's
// segment end, rounding toward the next point on the last segment of a
// span, so removing First deletes the point nearest the face.
func (this *River) PairAtFace(face int) (Pair, bool) {
	perSpan := this.config.SmoothingLevel + 1
	segments := (this.path.Len() - 1) * perSpan

	segment := face / 2
	if face < 0 || segment >= segments {
		return Pair{}, false
	}

	placed := (segment + 1) / perSpan
	previous := segment / perSpan
	if placed == previous {
		previous = placed + 1
	}

	return Pair{placed, previous}, true
}
