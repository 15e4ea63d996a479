// Package geom holds the plane primitives shared by the visibility engine.
// Coordinates are screen space: x grows to the right, y grows downward.
package geom

import "math"

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// AngleTo returns the heading from p towards q.
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
