package scenario

import (
	"chosenoffset.com/keepershadow/internal/core/geom"
	"chosenoffset.com/keepershadow/internal/core/visibility"
)

// Drag limits around the goal line and between the two players.
const (
	pickSlack        = 5  // Extra grab radius around a player disc
	keeperLineGap    = 1  // Keeper disc stays this far in front of the goal line
	keeperShooterGap = 15 // Keeper centre stays this far above the shooter
	shooterLineGap   = 30 // Shooter disc stays this far in front of the goal line
	shooterKeeperGap = 20 // Shooter centre stays this far below the keeper
)

// Entity identifies a draggable player.
type Entity int

const (
	EntityNone Entity = iota
	EntityShooter
	EntityKeeper
)

// String returns the display name of the entity.
func (e Entity) String() string {
	switch e {
	case EntityShooter:
		return "Attacker"
	case EntityKeeper:
		return "Goalkeeper"
	default:
		return "none"
	}
}

// State is the mutable scene owned by the UI: player positions and the cone
// angle. It hands out immutable Scene snapshots for analysis.
type State struct {
	cfg *Config

	Shooter      geom.Point
	Keeper       geom.Point
	ConeAngleDeg float64
}

// NewState creates a state at the configured start positions.
func NewState(cfg *Config) *State {
	s := &State{cfg: cfg}
	s.Reset()
	return s
}

// Config returns the layout the state was built from.
func (s *State) Config() *Config {
	return s.cfg
}

// Reset restores the start positions and cone angle.
func (s *State) Reset() {
	s.Shooter = s.cfg.Shooter.Pos()
	s.Keeper = s.cfg.Keeper.Pos()
	s.ConeAngleDeg = s.cfg.Cone.AngleDeg
}

// Pick returns the player under p. The shooter wins when both overlap.
func (s *State) Pick(p geom.Point) Entity {
	if geom.Distance(p, s.Shooter) <= s.cfg.Shooter.Radius+pickSlack {
		return EntityShooter
	}
	if geom.Distance(p, s.Keeper) <= s.cfg.Keeper.Radius+pickSlack {
		return EntityKeeper
	}
	return EntityNone
}

// Drag moves a player towards p, clamped so the keeper stays between the
// goal line and the shooter and both stay on the pitch.
func (s *State) Drag(e Entity, p geom.Point) {
	pitch := s.cfg.Pitch
	width := float64(pitch.Width)
	height := float64(pitch.Height)
	lineY := s.cfg.Goal.LineY()

	switch e {
	case EntityKeeper:
		r := s.cfg.Keeper.Radius
		s.Keeper.X = geom.Clamp(p.X, pitch.SideMargin+r, width-pitch.SideMargin-r)
		s.Keeper.Y = geom.Clamp(p.Y, lineY+r+keeperLineGap, s.Shooter.Y-keeperShooterGap)

	case EntityShooter:
		r := s.cfg.Shooter.Radius
		bottom := height - pitch.BottomMargin - r
		s.Shooter.X = geom.Clamp(p.X, pitch.SideMargin+r, width-pitch.SideMargin-r)
		y := geom.Clamp(p.Y, lineY+shooterLineGap+r, bottom)
		s.Shooter.Y = geom.Clamp(y, s.Keeper.Y+shooterKeeperGap, bottom)
	}
}

// SetConeAngle sets the full cone angle, clamped to the configured range.
func (s *State) SetConeAngle(deg float64) {
	s.ConeAngleDeg = geom.Clamp(deg, s.cfg.Cone.MinDeg, s.cfg.Cone.MaxDeg)
}

// StepConeAngle widens (n > 0) or narrows (n < 0) the cone by n steps.
func (s *State) StepConeAngle(n int) {
	s.SetConeAngle(s.ConeAngleDeg + float64(n)*s.cfg.Cone.StepDeg)
}

// Scene snapshots the state for the visibility engine.
func (s *State) Scene() visibility.Scene {
	return visibility.Scene{
		Goal:         s.cfg.Goal.Segment(),
		Shooter:      s.Shooter,
		ConeAngleDeg: s.ConeAngleDeg,
		Keeper: visibility.Keeper{
			Pos:    s.Keeper,
			Radius: s.cfg.Keeper.Radius,
		},
		ReachMultiplier: s.cfg.ReachMultiplier,
	}
}
