package visibility

import "chosenoffset.com/keepershadow/internal/core/geom"

// DefaultReachMultiplier grows the keeper radius by one extra radius for the
// reachable shadow.
const DefaultReachMultiplier = 1.0

// Scene is an immutable snapshot of everything one frame depends on.
type Scene struct {
	Goal         GoalSegment
	Shooter      geom.Point
	ConeAngleDeg float64
	Keeper       Keeper

	// ReachMultiplier scales Keeper.Radius into the extra reach used for the
	// reachable shadow.
	ReachMultiplier float64
}

// ExtraReach returns the reach extension applied for the reachable shadow.
func (s Scene) ExtraReach() float64 {
	return s.Keeper.Radius * s.ReachMultiplier
}

// Analysis is the derived state for one Scene.
type Analysis struct {
	Cone      ConeData
	Standing  *Interval
	Reachable *Interval
}

// Analyze builds the cone and both keeper shadows for a scene.
func Analyze(s Scene) Analysis {
	cone := ComputeCone(Shooter{
		Pos:       s.Shooter,
		HalfAngle: HalfAngleFromDegrees(s.ConeAngleDeg),
	}, s.Goal)

	return Analysis{
		Cone:      cone,
		Standing:  ComputeShadow(cone, s.Keeper, 0),
		Reachable: ComputeShadow(cone, s.Keeper, s.ExtraReach()),
	}
}

// VisibleWidth is the length of goal line inside the cone.
func (a Analysis) VisibleWidth() float64 {
	return a.Cone.GoalInterval.Width()
}

// StandingWidth is the length of goal line the standing keeper covers.
func (a Analysis) StandingWidth() float64 {
	return a.Standing.Width()
}

// ReachableWidth is the length of goal line the keeper covers at full reach.
func (a Analysis) ReachableWidth() float64 {
	return a.Reachable.Width()
}

// OpenFraction returns the share of the visible interval left uncovered by
// shadow, in [0, 1]. It is 0 when nothing is visible.
func (a Analysis) OpenFraction(shadow *Interval) float64 {
	visible := a.VisibleWidth()
	if visible <= 0 {
		return 0
	}
	return geom.Clamp((visible-shadow.Width())/visible, 0, 1)
}
