package internal

const (
	// Tolerance below which two points are considered coincident
	Tolerance = 1e-6

	// Epsilon for parametric and length comparisons
	Epsilon = 1e-10
)

// Linearly interpolate between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp v to the closed interval [min, max]
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
