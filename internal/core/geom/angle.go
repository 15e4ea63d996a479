package geom

import "math"

const twoPi = 2 * math.Pi

// NormalizeAngle folds an angle in radians into (-π, π].
// Differences of two headings must go through here before they are compared.
func NormalizeAngle(a float64) float64 {
	for a <= -math.Pi {
		a += twoPi
	}
	for a > math.Pi {
		a -= twoPi
	}
	return a
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
