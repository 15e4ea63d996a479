package visibility

import (
	"math"

	"chosenoffset.com/keepershadow/internal/core/geom"
)

// HalfAngleFromDegrees converts a full cone angle in degrees to the
// half-angle in radians.
func HalfAngleFromDegrees(deg float64) float64 {
	return deg * math.Pi / 360
}

// ComputeCone aims the shooter's cone at the goal centre and projects it onto
// the goal mouth.
func ComputeCone(shooter Shooter, goal GoalSegment) ConeData {
	center := shooter.Pos.AngleTo(goal.Center())
	half := shooter.HalfAngle

	return ConeData{
		Origin:       shooter.Pos,
		Goal:         goal,
		CenterAngle:  center,
		HalfAngle:    half,
		LeftAngle:    center - half,
		RightAngle:   center + half,
		GoalInterval: goal.ProjectWedge(shooter.Pos, center, half, goal.Left, goal.Right),
	}
}

// FullAngleDegrees returns the cone's opening angle in degrees.
func (c ConeData) FullAngleDegrees() float64 {
	return geom.Degrees(2 * c.HalfAngle)
}
