package scenario

import (
	"testing"

	"chosenoffset.com/keepershadow/internal/core/geom"
)

func TestPick(t *testing.T) {
	s := NewState(DefaultConfig())

	tests := []struct {
		name string
		at   geom.Point
		want Entity
	}{
		{"shooter centre", geom.Point{X: 490, Y: 430}, EntityShooter},
		{"shooter grab slack", geom.Point{X: 490 + 21, Y: 430}, EntityShooter},
		{"just outside shooter", geom.Point{X: 490 + 22, Y: 430}, EntityNone},
		{"keeper centre", geom.Point{X: 490, Y: 140}, EntityKeeper},
		{"empty pitch", geom.Point{X: 100, Y: 300}, EntityNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Pick(tc.at); got != tc.want {
				t.Errorf("Pick(%v) = %v, expected %v", tc.at, got, tc.want)
			}
		})
	}
}

func TestDragKeeperStaysBetweenLineAndShooter(t *testing.T) {
	s := NewState(DefaultConfig())

	s.Drag(EntityKeeper, geom.Point{X: 0, Y: 0})
	if s.Keeper.X != 60 || s.Keeper.Y != 140 {
		t.Errorf("Expected keeper clamped to (60, 140), got %v", s.Keeper)
	}

	s.Drag(EntityKeeper, geom.Point{X: 2000, Y: 2000})
	if s.Keeper.X != 920 || s.Keeper.Y != 415 {
		t.Errorf("Expected keeper clamped to (920, 415), got %v", s.Keeper)
	}

	s.Drag(EntityKeeper, geom.Point{X: 500, Y: 300})
	if s.Keeper != (geom.Point{X: 500, Y: 300}) {
		t.Errorf("Expected free keeper move to (500, 300), got %v", s.Keeper)
	}
}

func TestDragShooterStaysBelowKeeper(t *testing.T) {
	s := NewState(DefaultConfig())

	s.Drag(EntityShooter, geom.Point{X: 490, Y: 2000})
	if s.Shooter.Y != 569 {
		t.Errorf("Expected shooter clamped to bottom y=569, got %v", s.Shooter.Y)
	}

	s.Drag(EntityKeeper, geom.Point{X: 490, Y: 400})
	s.Drag(EntityShooter, geom.Point{X: 490, Y: 0})
	if s.Shooter.Y != 420 {
		t.Errorf("Expected shooter held 20 below keeper at y=420, got %v", s.Shooter.Y)
	}

	s.Drag(EntityKeeper, geom.Point{X: 490, Y: 140})
	s.Drag(EntityShooter, geom.Point{X: 490, Y: 0})
	if s.Shooter.Y != 165 {
		t.Errorf("Expected shooter held in front of goal line at y=165, got %v", s.Shooter.Y)
	}
}

func TestDragNoneIsIgnored(t *testing.T) {
	s := NewState(DefaultConfig())
	before := *s
	s.Drag(EntityNone, geom.Point{X: 10, Y: 10})
	if s.Shooter != before.Shooter || s.Keeper != before.Keeper {
		t.Error("Expected drag without a target to leave players in place")
	}
}

func TestConeAngleControl(t *testing.T) {
	s := NewState(DefaultConfig())

	s.StepConeAngle(5)
	if s.ConeAngleDeg != 65 {
		t.Errorf("Expected 65 degree cone, got %v", s.ConeAngleDeg)
	}

	s.SetConeAngle(500)
	if s.ConeAngleDeg != 120 {
		t.Errorf("Expected cone clamped to 120, got %v", s.ConeAngleDeg)
	}

	s.StepConeAngle(-1000)
	if s.ConeAngleDeg != 5 {
		t.Errorf("Expected cone clamped to 5, got %v", s.ConeAngleDeg)
	}
}

func TestResetAndScene(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)

	s.Drag(EntityKeeper, geom.Point{X: 300, Y: 250})
	s.Drag(EntityShooter, geom.Point{X: 700, Y: 500})
	s.SetConeAngle(30)
	s.Reset()

	scene := s.Scene()
	if scene.Shooter != cfg.Shooter.Pos() || scene.Keeper.Pos != cfg.Keeper.Pos() {
		t.Errorf("Expected reset scene at start positions, got %+v", scene)
	}
	if scene.ConeAngleDeg != 60 || scene.Keeper.Radius != 20 {
		t.Errorf("Expected 60 degree cone and keeper radius 20, got %+v", scene)
	}
	if scene.Goal != cfg.Goal.Segment() || scene.ReachMultiplier != 1 {
		t.Errorf("Expected configured goal and reach multiplier, got %+v", scene)
	}

	// Scenes are snapshots: later drags do not leak into them.
	s.Drag(EntityKeeper, geom.Point{X: 300, Y: 250})
	if scene.Keeper.Pos == s.Keeper {
		t.Error("Expected scene snapshot to be independent of later drags")
	}
}
