package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chosenoffset.com/keepershadow/internal/core/geom"
	"chosenoffset.com/keepershadow/internal/core/visibility"
	"chosenoffset.com/keepershadow/internal/report"
	"chosenoffset.com/keepershadow/internal/scenario"
)

var (
	flagShooter string
	flagKeeper  string
	flagCone    float64
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the goal visibility analysis of one frame",
	Long: `Compute the cone and keeper shadows for the configured scenario and
print them. Positions and the cone angle can be overridden; overrides go
through the same clamping as dragging in the window.

Examples:
  keepershadow report
  keepershadow report --shooter 600,420 --keeper 520,200
  keepershadow report --cone 30`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&flagShooter, "shooter", "", "Shooter position as x,y")
	reportCmd.Flags().StringVar(&flagKeeper, "keeper", "", "Keeper position as x,y")
	reportCmd.Flags().Float64Var(&flagCone, "cone", 0, "Full cone angle in degrees, clamped to the configured range (default: configured start angle)")
}

func runReport(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadScenario(logger)
	if err != nil {
		return err
	}

	var cone *float64
	if cmd.Flags().Changed("cone") {
		cone = &flagCone
	}

	state := scenario.NewState(cfg)
	if err := applyOverrides(state, flagShooter, flagKeeper, cone); err != nil {
		return err
	}

	scene := state.Scene()
	fmt.Fprintln(cmd.OutOrStdout(), report.Render(scene, visibility.Analyze(scene)))
	return nil
}

// applyOverrides moves the shooter first so the keeper is clamped against
// the shooter's final position. A nil cone keeps the configured angle.
func applyOverrides(state *scenario.State, shooter, keeper string, coneDeg *float64) error {
	if shooter != "" {
		p, err := parsePoint(shooter)
		if err != nil {
			return fmt.Errorf("invalid --shooter: %w", err)
		}
		state.Drag(scenario.EntityShooter, p)
	}
	if keeper != "" {
		p, err := parsePoint(keeper)
		if err != nil {
			return fmt.Errorf("invalid --keeper: %w", err)
		}
		state.Drag(scenario.EntityKeeper, p)
	}
	if coneDeg != nil {
		state.SetConeAngle(*coneDeg)
	}
	return nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return geom.Point{X: x, Y: y}, nil
}
