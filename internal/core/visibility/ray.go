package visibility

import (
	"math"

	"chosenoffset.com/keepershadow/internal/core/geom"
)

// RayToGoalX returns the x-coordinate where the ray from origin with heading
// angle crosses the goal line. The line is treated as unbounded here; callers
// clamp to the goal mouth. Rays parallel to the line or crossing it behind
// the origin report ok == false.
func (g GoalSegment) RayToGoalX(origin geom.Point, angle float64) (x float64, ok bool) {
	dy := math.Sin(angle)
	if math.Abs(dy) < parallelEpsilon {
		return 0, false
	}

	t := (g.LineY - origin.Y) / dy
	if t <= 0 {
		return 0, false
	}

	return origin.X + t*math.Cos(angle), true
}
