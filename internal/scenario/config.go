// Package scenario provides the scene layout and the mutable UI state that
// feeds the visibility engine. Layouts are loaded from YAML files so a
// scenario can be tuned without rebuilding.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/keepershadow/internal/core/geom"
	"chosenoffset.com/keepershadow/internal/core/visibility"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid scenario config")

// Config holds the full scene layout
type Config struct {
	Pitch   PitchConfig  `yaml:"pitch"`
	Goal    GoalConfig   `yaml:"goal"`
	Shooter PlayerConfig `yaml:"shooter"`
	Keeper  PlayerConfig `yaml:"keeper"`
	Cone    ConeConfig   `yaml:"cone"`

	// ReachMultiplier scales the keeper radius into the extra reach of the
	// reachable shadow (1.0 doubles the effective radius).
	ReachMultiplier float64 `yaml:"reach_multiplier"`
}

// PitchConfig defines the drawable area and the drag margins
type PitchConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	SideMargin   float64 `yaml:"side_margin"`   // Players stay this far from the side edges
	BottomMargin float64 `yaml:"bottom_margin"` // Shooter stays this far above the bottom edge
}

// GoalConfig defines the goal frame. The goal line sits Depth below Y.
type GoalConfig struct {
	Y     float64 `yaml:"y"`
	Depth float64 `yaml:"depth"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

// LineY returns the y-coordinate of the goal line.
func (g GoalConfig) LineY() float64 {
	return g.Y + g.Depth
}

// Segment returns the goal line as seen by the visibility engine.
func (g GoalConfig) Segment() visibility.GoalSegment {
	return visibility.GoalSegment{Left: g.Left, Right: g.Right, LineY: g.LineY()}
}

// PlayerConfig is a start position and disc radius
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// Pos returns the start position.
func (p PlayerConfig) Pos() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// ConeConfig defines the shooter's cone angle control, in degrees
type ConeConfig struct {
	AngleDeg float64 `yaml:"angle_deg"`
	MinDeg   float64 `yaml:"min_deg"`
	MaxDeg   float64 `yaml:"max_deg"`
	StepDeg  float64 `yaml:"step_deg"`
}

// DefaultConfig returns the reference penalty-box scene
func DefaultConfig() *Config {
	return &Config{
		Pitch: PitchConfig{
			Width:        980,
			Height:       620,
			SideMargin:   40,
			BottomMargin: 35,
		},
		Goal: GoalConfig{
			Y:     84,
			Depth: 35,
			Left:  340,
			Right: 640,
		},
		Shooter: PlayerConfig{X: 490, Y: 430, Radius: 16},
		Keeper:  PlayerConfig{X: 490, Y: 140, Radius: 20},
		Cone: ConeConfig{
			AngleDeg: 60,
			MinDeg:   5,
			MaxDeg:   120,
			StepDeg:  1,
		},
		ReachMultiplier: visibility.DefaultReachMultiplier,
	}
}

// LoadConfig loads a scenario from a YAML file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read scenario config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse scenario config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the layout for values the engine and UI cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Pitch.Width <= 0 || c.Pitch.Height <= 0:
		return fmt.Errorf("%w: pitch size %dx%d", ErrInvalidConfig, c.Pitch.Width, c.Pitch.Height)
	case c.Goal.Left >= c.Goal.Right:
		return fmt.Errorf("%w: goal left %v must be less than right %v", ErrInvalidConfig, c.Goal.Left, c.Goal.Right)
	case c.Shooter.Radius < 0 || c.Keeper.Radius < 0:
		return fmt.Errorf("%w: player radius must not be negative", ErrInvalidConfig)
	case c.ReachMultiplier < 0:
		return fmt.Errorf("%w: reach multiplier %v is negative", ErrInvalidConfig, c.ReachMultiplier)
	case c.Cone.MinDeg < 0 || c.Cone.MinDeg > c.Cone.MaxDeg:
		return fmt.Errorf("%w: cone range [%v, %v]", ErrInvalidConfig, c.Cone.MinDeg, c.Cone.MaxDeg)
	case c.Cone.AngleDeg < c.Cone.MinDeg || c.Cone.AngleDeg > c.Cone.MaxDeg:
		return fmt.Errorf("%w: cone angle %v outside [%v, %v]", ErrInvalidConfig, c.Cone.AngleDeg, c.Cone.MinDeg, c.Cone.MaxDeg)
	case c.Cone.StepDeg <= 0:
		return fmt.Errorf("%w: cone step %v must be positive", ErrInvalidConfig, c.Cone.StepDeg)
	}
	return nil
}
