package visibility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/keepershadow/internal/core/geom"
)

var testGoal = GoalSegment{Left: 340, Right: 640, LineY: 119}

var testShooter = geom.Point{X: 490, Y: 430}

func TestRayToGoalX(t *testing.T) {
	tests := []struct {
		name   string
		origin geom.Point
		angle  float64
		wantX  float64
		wantOK bool
	}{
		{"straight up the pitch", testShooter, -math.Pi / 2, 490, true},
		{"forty five degrees left", testShooter, -3 * math.Pi / 4, 490 - 311, true},
		{"parallel to the line", testShooter, 0, 0, false},
		{"nearly parallel", testShooter, math.Pi - 1e-7, 0, false},
		{"pointing away", testShooter, math.Pi / 2, 0, false},
		{"from behind the line looking down", geom.Point{X: 200, Y: 100}, math.Pi / 2, 200, true},
		{"origin on the line", geom.Point{X: 400, Y: 119}, -math.Pi / 2, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, ok := testGoal.RayToGoalX(tc.origin, tc.angle)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assert.InDelta(t, tc.wantX, x, 1e-9)
			}
		})
	}
}

func TestProjectWedge(t *testing.T) {
	toLeftPost := testShooter.AngleTo(geom.Point{X: 340, Y: 119})
	tenDeg := 10 * math.Pi / 180
	half20 := 20 * math.Pi / 180
	reach20 := 311 * math.Tan(half20)

	tests := []struct {
		name         string
		center, half float64
		minX, maxX   float64
		want         *Interval
	}{
		{
			name: "inverted range", center: -math.Pi / 2, half: 0.5,
			minX: 640, maxX: 340, want: nil,
		},
		{
			name: "zero width range", center: -math.Pi / 2, half: 0.5,
			minX: 400, maxX: 400, want: nil,
		},
		{
			name: "narrow wedge uses boundary crossings", center: -math.Pi / 2, half: half20,
			minX: 340, maxX: 640, want: &Interval{Left: 490 - reach20, Right: 490 + reach20},
		},
		{
			name: "wedge pointing away", center: math.Pi / 2, half: 0.3,
			minX: 340, maxX: 640, want: nil,
		},
		{
			name: "wide wedge keeps endpoints without boundary crossings", center: -math.Pi / 2, half: 0.6 * math.Pi,
			minX: 340, maxX: 640, want: &Interval{Left: 340, Right: 640},
		},
		{
			name: "wedge on the left post is clamped", center: toLeftPost, half: tenDeg,
			minX: 340, maxX: 640, want: &Interval{Left: 340, Right: 490 - 311/math.Tan(toLeftPost+tenDeg)},
		},
		{
			name: "zero half angle collapses", center: -math.Pi / 2, half: 0,
			minX: 340, maxX: 640, want: nil,
		},
		{
			name: "wedge entirely beside the goal", center: testShooter.AngleTo(geom.Point{X: -200, Y: 119}), half: 0.05,
			minX: 340, maxX: 640, want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := testGoal.ProjectWedge(testShooter, tc.center, tc.half, tc.minX, tc.maxX)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tc.want.Left, got.Left, 1e-6)
			assert.InDelta(t, tc.want.Right, got.Right, 1e-6)
			assert.Less(t, got.Left, got.Right)
		})
	}
}

func TestComputeConeReferenceScene(t *testing.T) {
	cone := ComputeCone(Shooter{Pos: testShooter, HalfAngle: HalfAngleFromDegrees(60)}, testGoal)

	assert.InDelta(t, math.Atan2(-311, 0), cone.CenterAngle, 1e-12)
	assert.InDelta(t, -math.Pi/2, cone.CenterAngle, 1e-12)
	assert.InDelta(t, math.Pi/6, cone.HalfAngle, 1e-12)
	assert.InDelta(t, cone.CenterAngle-math.Pi/6, cone.LeftAngle, 1e-12)
	assert.InDelta(t, cone.CenterAngle+math.Pi/6, cone.RightAngle, 1e-12)
	assert.InDelta(t, 60.0, cone.FullAngleDegrees(), 1e-9)

	// The posts subtend about 25.75 degrees each side, inside the 30 degree half-angle.
	postHalf := math.Atan2(150, 311)
	require.Less(t, postHalf, cone.HalfAngle)

	require.NotNil(t, cone.GoalInterval)
	assert.InDelta(t, 340.0, cone.GoalInterval.Left, 1e-6)
	assert.InDelta(t, 640.0, cone.GoalInterval.Right, 1e-6)
}

func TestComputeConeNarrowerThanGoal(t *testing.T) {
	cone := ComputeCone(Shooter{Pos: testShooter, HalfAngle: HalfAngleFromDegrees(40)}, testGoal)

	require.NotNil(t, cone.GoalInterval)
	reach := 311 * math.Tan(20*math.Pi/180)
	assert.InDelta(t, 490-reach, cone.GoalInterval.Left, 1e-6)
	assert.InDelta(t, 490+reach, cone.GoalInterval.Right, 1e-6)
}

func TestComputeConeZeroAngle(t *testing.T) {
	cone := ComputeCone(Shooter{Pos: testShooter, HalfAngle: 0}, testGoal)
	assert.Nil(t, cone.GoalInterval)
}

func TestComputeConeStaysInsideGoal(t *testing.T) {
	for x := 60.0; x <= 920; x += 43 {
		for y := 160.0; y <= 580; y += 37 {
			for deg := 0.0; deg <= 180; deg += 15 {
				cone := ComputeCone(Shooter{Pos: geom.Point{X: x, Y: y}, HalfAngle: HalfAngleFromDegrees(deg)}, testGoal)
				iv := cone.GoalInterval
				if iv == nil {
					continue
				}
				assert.Less(t, iv.Left, iv.Right, "shooter (%v, %v) cone %v", x, y, deg)
				assert.GreaterOrEqual(t, iv.Left, testGoal.Left)
				assert.LessOrEqual(t, iv.Right, testGoal.Right)
				assert.LessOrEqual(t, iv.Width(), testGoal.Width())
			}
		}
	}
}

// A shooter upfield of the goal line still looks forward onto it: the cone
// centre crosses the line at the goal centre, so only a closed cone sees nothing.
func TestComputeConeBehindGoalLine(t *testing.T) {
	cone := ComputeCone(Shooter{Pos: geom.Point{X: 490, Y: 50}, HalfAngle: HalfAngleFromDegrees(60)}, testGoal)

	assert.InDelta(t, math.Pi/2, cone.CenterAngle, 1e-12)
	require.NotNil(t, cone.GoalInterval)
	reach := 69 * math.Tan(math.Pi/6)
	assert.InDelta(t, 490-reach, cone.GoalInterval.Left, 1e-6)
	assert.InDelta(t, 490+reach, cone.GoalInterval.Right, 1e-6)

	closed := ComputeCone(Shooter{Pos: geom.Point{X: 490, Y: 50}, HalfAngle: 0}, testGoal)
	assert.Nil(t, closed.GoalInterval)

	for x := 60.0; x <= 920; x += 43 {
		for y := 20.0; y < testGoal.LineY; y += 30 {
			for deg := 15.0; deg <= 180; deg += 15 {
				iv := ComputeCone(Shooter{Pos: geom.Point{X: x, Y: y}, HalfAngle: HalfAngleFromDegrees(deg)}, testGoal).GoalInterval
				require.NotNil(t, iv, "shooter (%v, %v) cone %v", x, y, deg)
				assert.GreaterOrEqual(t, iv.Left, testGoal.Left)
				assert.LessOrEqual(t, iv.Right, testGoal.Right)
			}
		}
	}
}

func referenceCone(deg float64) ConeData {
	return ComputeCone(Shooter{Pos: testShooter, HalfAngle: HalfAngleFromDegrees(deg)}, testGoal)
}

func TestComputeShadowNothingVisible(t *testing.T) {
	cone := referenceCone(0)
	require.Nil(t, cone.GoalInterval)

	got := ComputeShadow(cone, Keeper{Pos: geom.Point{X: 490, Y: 300}, Radius: 20}, 0)
	assert.Nil(t, got)
}

func TestComputeShadowKeeperOnShooter(t *testing.T) {
	cone := referenceCone(60)
	got := ComputeShadow(cone, Keeper{Pos: testShooter, Radius: 20}, 0)

	require.NotNil(t, got)
	assert.Equal(t, *cone.GoalInterval, *got)
	assert.NotSame(t, cone.GoalInterval, got)
}

func TestComputeShadowKeeperNotUpfield(t *testing.T) {
	cone := referenceCone(60)
	for _, x := range []float64{100, 400, 490, 600, 900} {
		for _, y := range []float64{430, 431, 500, 610} {
			for _, r := range []float64{1, 20, 1000} {
				got := ComputeShadow(cone, Keeper{Pos: geom.Point{X: x, Y: y}, Radius: r}, 0)
				if x == testShooter.X && y == testShooter.Y {
					continue
				}
				assert.Nil(t, got, "keeper (%v, %v) radius %v", x, y, r)
			}
		}
	}
}

func TestComputeShadowShooterInsideDisc(t *testing.T) {
	cone := referenceCone(60)

	got := ComputeShadow(cone, Keeper{Pos: geom.Point{X: 490, Y: 420}, Radius: 20}, 0)
	require.NotNil(t, got)
	assert.Equal(t, *cone.GoalInterval, *got)

	// Reach alone can swallow the shooter.
	got = ComputeShadow(cone, Keeper{Pos: geom.Point{X: 490, Y: 400}, Radius: 20}, 10)
	require.NotNil(t, got)
	assert.Equal(t, *cone.GoalInterval, *got)
}

func TestComputeShadowHalfWidthRoundTrip(t *testing.T) {
	cone := referenceCone(60)
	keeper := Keeper{Pos: geom.Point{X: 490, Y: 280}, Radius: 20}
	require.InDelta(t, 150.0, geom.Distance(testShooter, keeper.Pos), 1e-12)

	got := ComputeShadow(cone, keeper, 0)
	require.NotNil(t, got)

	delta := math.Asin(20.0 / 150.0)
	assert.InDelta(t, 490-311*math.Tan(delta), got.Left, 1e-9)
	assert.InDelta(t, 490+311*math.Tan(delta), got.Right, 1e-9)

	recovered := math.Atan2((got.Right-got.Left)/2, 311)
	assert.InDelta(t, delta, recovered, 1e-9)
}

func TestComputeShadowMissesGoal(t *testing.T) {
	cone := referenceCone(60)
	got := ComputeShadow(cone, Keeper{Pos: geom.Point{X: 100, Y: 300}, Radius: 20}, 0)
	assert.Nil(t, got)
}

func TestComputeShadowClippedToVisibleInterval(t *testing.T) {
	cone := referenceCone(40)
	require.NotNil(t, cone.GoalInterval)

	keeper := Keeper{Pos: geom.Point{X: 460, Y: 330}, Radius: 20}
	got := ComputeShadow(cone, keeper, 0)
	require.NotNil(t, got)

	d := geom.Distance(testShooter, keeper.Pos)
	rightEdge := testShooter.AngleTo(keeper.Pos) + math.Asin(20/d)
	assert.InDelta(t, cone.GoalInterval.Left, got.Left, 1e-9)
	assert.InDelta(t, 490-311/math.Tan(rightEdge), got.Right, 1e-6)
	assert.True(t, got.Within(cone.GoalInterval))
	assert.Less(t, got.Right, cone.GoalInterval.Right)
}

func TestComputeShadowReachIsMonotonic(t *testing.T) {
	shooters := []geom.Point{testShooter, {X: 600, Y: 400}, {X: 300, Y: 520}}

	for _, s := range shooters {
		cone := ComputeCone(Shooter{Pos: s, HalfAngle: HalfAngleFromDegrees(60)}, testGoal)
		for x := 350.0; x <= 630; x += 20 {
			for y := 140.0; y <= 410; y += 30 {
				keeper := Keeper{Pos: geom.Point{X: x, Y: y}, Radius: 20}
				standing := ComputeShadow(cone, keeper, 0)
				reachable := ComputeShadow(cone, keeper, keeper.Radius)

				assert.True(t, standing.Within(cone.GoalInterval), "standing outside cone for keeper (%v, %v)", x, y)
				assert.True(t, reachable.Within(cone.GoalInterval), "reachable outside cone for keeper (%v, %v)", x, y)
				assert.True(t, standing.Within(reachable), "reach shrank shadow for keeper (%v, %v) shooter %v", x, y, s)
				if standing != nil {
					assert.NotNil(t, reachable)
				}
			}
		}
	}
}

func TestIntervalHelpers(t *testing.T) {
	var empty *Interval
	a := &Interval{Left: 0, Right: 10}
	b := &Interval{Left: 5, Right: 20}

	assert.Equal(t, 0.0, empty.Width())
	assert.Equal(t, 10.0, a.Width())
	assert.Nil(t, empty.Clone())
	assert.True(t, empty.Within(a))
	assert.False(t, a.Within(empty))
	assert.False(t, a.Within(b))
	assert.Equal(t, &Interval{Left: 5, Right: 10}, a.Intersect(b))
	assert.Nil(t, a.Intersect(&Interval{Left: 10, Right: 12}))
	assert.Nil(t, a.Intersect(empty))
}
