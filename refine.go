package river

import (
	. "github.com/alexozer/river/internal"
)

// Refine densifies a sparse control point sequence for meshing
//
// Between every consecutive pair, steps points are sampled on the pair's
// SegmentBezier at t = (i+1)/(steps+1). Each sample faces along the curve
// tangent and carries a width interpolated linearly between the pair.
// The control points are kept as they are, so the result starts with
// points[0], ends with the last point and has (n-1)*(steps+1)+1 entries.
//
// **params**
// + the sparse control points
// + the number of points inserted per pair; negative counts as 0
//
// **returns**
// + a freshly allocated refined sequence
func Refine(points []ControlPoint, steps int) []ControlPoint {
	if steps < 0 {
		steps = 0
	}

	if len(points) < 2 {
		return append([]ControlPoint(nil), points...)
	}

	refined := make([]ControlPoint, 0, (len(points)-1)*(steps+1)+1)
	refined = append(refined, points[0])

	for i := 0; i < len(points)-1; i++ {
		first, second := points[i], points[i+1]
		curve := SegmentBezier(first, second)

		for _, sample := range curve.Sample(steps) {
			refined = append(refined, ControlPoint{
				Position:  sample.Pt,
				Width:     Lerp(first.Width, second.Width, sample.U),
				Direction: LookRotation(sample.Tangent),
			})
		}

		refined = append(refined, second)
	}

	return refined
}
