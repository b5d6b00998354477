// Package riverfile stores rivers as TOML documents.
//
// A document holds the generation settings, the river's origin and its
// control points in path order:
//
//	uv_scale = 0.05
//	smoothing_level = 2
//	width = 2.0
//	origin = [0.0, 0.0, 0.0]
//
//	[[point]]
//	position = [0.0, 0.0, 0.0]
//	width = 2.0
//	direction = [0.0, 0.7071067811865476, 0.0, 0.7071067811865476]
//
// Directions are quaternions in x, y, z, w order. Missing settings take
// their defaults; meshes are never stored.
package riverfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/alexozer/river"
	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
)

var (
	ErrNoPoints  = errors.New("river has no control points")
	ErrNotFinite = errors.New("value is not finite")
)

type Document struct {
	UVScale        float64    `toml:"uv_scale"`
	SmoothingLevel int        `toml:"smoothing_level"`
	Width          float64    `toml:"width"`
	Origin         [3]float64 `toml:"origin"`
	Points         []Point    `toml:"point"`
}

type Point struct {
	Position  [3]float64 `toml:"position"`
	Width     float64    `toml:"width"`
	Direction [4]float64 `toml:"direction"`
}

// FromRiver captures a river's settings and control points
func FromRiver(r *river.River) Document {
	cfg := r.Config()
	doc := Document{
		UVScale:        cfg.UVScale,
		SmoothingLevel: cfg.SmoothingLevel,
		Width:          cfg.Width,
		Origin:         r.Origin,
	}

	for _, pt := range r.Points() {
		doc.Points = append(doc.Points, Point{
			Position:  pt.Position,
			Width:     pt.Width,
			Direction: pt.Direction,
		})
	}

	return doc
}

// River validates the document and builds the river it describes. Widths
// and smoothing level are clamped, directions normalized.
func (doc *Document) River() (*river.River, error) {
	if len(doc.Points) == 0 {
		return nil, ErrNoPoints
	}

	if err := checkFinite("uv_scale", doc.UVScale); err != nil {
		return nil, err
	}
	if err := checkFinite("width", doc.Width); err != nil {
		return nil, err
	}
	if err := checkFinite("origin", doc.Origin[:]...); err != nil {
		return nil, err
	}

	points := make([]river.ControlPoint, len(doc.Points))
	for i, pt := range doc.Points {
		if err := checkFinite(fmt.Sprintf("point %d", i), append(append(pt.Position[:], pt.Width), pt.Direction[:]...)...); err != nil {
			return nil, err
		}

		points[i] = river.ControlPoint{
			Position:  vec3.T(pt.Position),
			Width:     pt.Width,
			Direction: quaternion.T(pt.Direction),
		}
	}

	return river.FromPath(vec3.T(doc.Origin), river.PathOf(points...), river.WithConfig(river.Config{
		UVScale:        doc.UVScale,
		SmoothingLevel: doc.SmoothingLevel,
		Width:          doc.Width,
	})), nil
}

func checkFinite(name string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %w", name, ErrNotFinite)
		}
	}

	return nil
}

// Decode reads a river document
func Decode(r io.Reader) (*river.River, error) {
	doc := Document{
		UVScale:        river.DefaultUVScale,
		SmoothingLevel: river.DefaultSmoothingLevel,
		Width:          river.DefaultWidth,
	}

	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode river: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		river.Logger().Warn("river document has unknown keys", "keys", fmt.Sprint(undecoded))
	}

	rv, err := doc.River()
	if err != nil {
		return nil, fmt.Errorf("decode river: %w", err)
	}

	return rv, nil
}

// Encode writes a river document
func Encode(w io.Writer, r *river.River) error {
	doc := FromRiver(r)
	if err := toml.NewEncoder(w).Encode(&doc); err != nil {
		return fmt.Errorf("encode river: %w", err)
	}

	return nil
}

func Load(filename string) (*river.River, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

func Save(filename string, r *river.River) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := Encode(f, r); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
