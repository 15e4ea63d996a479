package visibility

import (
	"math"
	"slices"

	"chosenoffset.com/keepershadow/internal/core/geom"
)

// ProjectWedge intersects the angular wedge centerAngle±halfAngle seen from
// origin with the goal line restricted to [minX, maxX].
//
// A boundary ray can miss the line (parallel or pointing away) while the
// wedge still swallows an endpoint of the range, so the endpoints are tested
// for membership in addition to the two boundary crossings. The extremes of
// the surviving candidates are clamped to the range; a zero-width or inverted
// result is reported as nil.
func (g GoalSegment) ProjectWedge(origin geom.Point, centerAngle, halfAngle, minX, maxX float64) *Interval {
	if maxX <= minX {
		return nil
	}

	inside := func(x float64) bool {
		angleToPoint := math.Atan2(g.LineY-origin.Y, x-origin.X)
		diff := geom.NormalizeAngle(angleToPoint - centerAngle)
		return math.Abs(diff) <= halfAngle+insideEpsilon
	}

	candidates := make([]float64, 0, 4)
	if x, ok := g.RayToGoalX(origin, centerAngle-halfAngle); ok {
		candidates = append(candidates, x)
	}
	if x, ok := g.RayToGoalX(origin, centerAngle+halfAngle); ok {
		candidates = append(candidates, x)
	}
	if inside(minX) {
		candidates = append(candidates, minX)
	}
	if inside(maxX) {
		candidates = append(candidates, maxX)
	}

	if len(candidates) == 0 {
		return nil
	}

	left := geom.Clamp(slices.Min(candidates), minX, maxX)
	right := geom.Clamp(slices.Max(candidates), minX, maxX)
	if right <= left {
		return nil
	}
	return &Interval{Left: left, Right: right}
}
