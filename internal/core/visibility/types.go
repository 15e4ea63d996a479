// Package visibility computes what part of a goal line a shooter can see and
// how much of it a goalkeeper disc covers. Everything here is a pure function
// of its arguments; callers rebuild results from a fresh Scene every frame.
package visibility

import "chosenoffset.com/keepershadow/internal/core/geom"

const (
	// parallelEpsilon is the smallest |sin| for which a ray still counts as
	// crossing the goal line.
	parallelEpsilon = 1e-6

	// insideEpsilon absorbs rounding when a segment endpoint sits exactly on
	// a wedge boundary.
	insideEpsilon = 1e-9

	// coincidentEpsilon is the distance below which keeper and shooter are
	// treated as the same point.
	coincidentEpsilon = 1e-6
)

// GoalSegment is the horizontal goal line y = LineY bounded by [Left, Right].
// Left < Right is a precondition, not something the engine checks.
type GoalSegment struct {
	Left, Right float64
	LineY       float64
}

// CenterX returns the x-coordinate of the goal mouth's midpoint.
func (g GoalSegment) CenterX() float64 {
	return (g.Left + g.Right) / 2
}

// Center returns the midpoint of the goal line.
func (g GoalSegment) Center() geom.Point {
	return geom.Point{X: g.CenterX(), Y: g.LineY}
}

// Width returns the length of the goal mouth.
func (g GoalSegment) Width() float64 {
	return g.Right - g.Left
}

// Interval is a sub-segment [Left, Right] of the goal line with Left < Right.
// The empty interval is a nil *Interval, never a zero-width value.
type Interval struct {
	Left, Right float64
}

// Width returns Right-Left, or 0 for the empty interval.
func (iv *Interval) Width() float64 {
	if iv == nil {
		return 0
	}
	return iv.Right - iv.Left
}

// Clone returns an independent copy of iv.
func (iv *Interval) Clone() *Interval {
	if iv == nil {
		return nil
	}
	c := *iv
	return &c
}

// Within reports whether iv lies inside outer. The empty interval lies
// inside everything.
func (iv *Interval) Within(outer *Interval) bool {
	if iv == nil {
		return true
	}
	if outer == nil {
		return false
	}
	return iv.Left >= outer.Left && iv.Right <= outer.Right
}

// Intersect returns the overlap of two intervals, nil when they do not
// overlap with positive width.
func (iv *Interval) Intersect(other *Interval) *Interval {
	if iv == nil || other == nil {
		return nil
	}
	left := max(iv.Left, other.Left)
	right := min(iv.Right, other.Right)
	if right <= left {
		return nil
	}
	return &Interval{Left: left, Right: right}
}

// Shooter is the attacking player: a position and the half-angle of the
// symmetric cone aimed at the goal centre.
type Shooter struct {
	Pos       geom.Point
	HalfAngle float64
}

// Keeper is the occluding disc. Reach extensions are passed separately to
// ComputeShadow so one keeper can be evaluated at several radii.
type Keeper struct {
	Pos    geom.Point
	Radius float64
}

// ConeData is the shooter's cone resolved against the goal line.
type ConeData struct {
	Origin      geom.Point
	Goal        GoalSegment
	CenterAngle float64
	HalfAngle   float64
	LeftAngle   float64
	RightAngle  float64

	// GoalInterval is nil when the cone misses the goal mouth entirely.
	GoalInterval *Interval
}
