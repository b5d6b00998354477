package river

import "errors"

var (
	// ErrPairNotAdjacent is returned when a Pair does not name two
	// neighbouring control points.
	ErrPairNotAdjacent = errors.New("control points are not adjacent")

	// ErrPairOutOfRange is returned when a Pair indexes past the path.
	ErrPairOutOfRange = errors.New("control point index out of range")
)
