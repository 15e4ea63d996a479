package visibility

import (
	"math"

	"chosenoffset.com/keepershadow/internal/core/geom"
)

// ComputeShadow returns the part of the cone's goal interval hidden by the
// keeper disc grown by extraReach. A nil result means nothing is occluded.
//
// The keeper only matters when it stands upfield of the shooter
// (keeper.Y < shooter.Y). A keeper on top of the shooter, or a disc that
// contains the shooter, hides the whole visible interval.
func ComputeShadow(cone ConeData, keeper Keeper, extraReach float64) *Interval {
	visible := cone.GoalInterval
	if visible == nil || visible.Right <= visible.Left {
		return nil
	}

	shooter := cone.Origin
	d := geom.Distance(shooter, keeper.Pos)
	if d < coincidentEpsilon {
		return visible.Clone()
	}

	if keeper.Pos.Y >= shooter.Y {
		return nil
	}

	radius := keeper.Radius + extraReach
	if d <= radius {
		return visible.Clone()
	}

	delta := math.Asin(math.Min(1, radius/d))
	goal := cone.Goal
	window := goal.ProjectWedge(shooter, shooter.AngleTo(keeper.Pos), delta, goal.Left, goal.Right)
	if window == nil {
		return nil
	}

	return window.Intersect(visible)
}
