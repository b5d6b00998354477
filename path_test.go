package river

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestNewPath(t *testing.T) {
	path := NewPath(3)
	test.T(t, path.Len(), 1)

	pt, ok := path.First()
	test.That(t, ok)
	test.T(t, pt.Position, vec3.Zero)
	test.Float(t, pt.Width, 3.0)
	testVec(t, pt.Forward(), vec3.T{1, 0, 0})

	test.Float(t, NewPath(0).At(0).Width, MinWidth)
}

func TestPathCheck(t *testing.T) {
	path := PathOf(curvedPoints(4)...)

	var tts = []struct {
		pair Pair
		err  error
	}{
		{Pair{0, 1}, nil},
		{Pair{2, 1}, nil},
		{Pair{2, 3}, nil},
		{Pair{0, 2}, ErrPairNotAdjacent},
		{Pair{1, 1}, ErrPairNotAdjacent},
		{Pair{3, 4}, ErrPairOutOfRange},
		{Pair{-1, 0}, ErrPairOutOfRange},
	}
	for _, tt := range tts {
		err := path.Check(tt.pair)
		if tt.err == nil {
			test.Error(t, err)
		} else {
			test.That(t, errors.Is(err, tt.err), tt.pair, err)
		}
	}
}

func TestPathPairs(t *testing.T) {
	test.T(t, len(NewPath(2).Pairs()), 0)
	test.T(t, PathOf(curvedPoints(3)...).Pairs(), []Pair{{0, 1}, {1, 2}})

	test.T(t, Pair{3, 2}.Lower(), 2)
	test.T(t, Pair{3, 2}.Upper(), 3)
}

func TestPathEdits(t *testing.T) {
	points := curvedPoints(3)
	path := PathOf(points...)

	extra := facing(AxisForward, vec3.T{5, 0, 5}, 1)
	path.InsertAt(1, extra)
	test.T(t, path.Len(), 4)
	test.T(t, path.At(1), extra)
	test.T(t, path.At(2), points[1])
	test.T(t, path.IndexOf(extra), 1)

	// out of range insertions are clamped to the ends
	path.InsertAt(99, extra)
	test.T(t, path.IndexOf(extra), 1)
	last, _ := path.Last()
	test.T(t, last, extra)

	test.That(t, path.Remove(4))
	test.That(t, path.Remove(1))
	test.That(t, !path.Remove(3))
	test.That(t, !path.Remove(-1))
	test.T(t, path.Points(), points)

	test.That(t, path.Set(2, extra))
	test.That(t, !path.Set(3, extra))
	test.T(t, path.At(2), extra)

	// stored points are clamped
	path.Append(ControlPoint{Position: vec3.T{1, 2, 3}})
	last, _ = path.Last()
	test.Float(t, last.Width, MinWidth)

	test.T(t, path.IndexOf(ControlPoint{}), -1)

	for path.Len() > 0 {
		path.Remove(0)
	}
	_, ok := path.First()
	test.That(t, !ok)
}

func TestPathPointsCopy(t *testing.T) {
	path := PathOf(curvedPoints(2)...)
	points := path.Points()
	points[0].Width = 100
	test.That(t, path.At(0).Width != 100)
}
