// keepershadow shows how much of the goal a shooter can see past the keeper.
//
// Usage:
//
//	keepershadow             - Open the interactive pitch (same as play)
//	keepershadow play        - Open the interactive pitch
//	keepershadow report      - Print the analysis of one frame
//
// Global flags:
//
//	--config <path>     - Scenario YAML (default: configs/penalty.yaml)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/keepershadow/internal/scenario"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keepershadow",
	Short: "Goal visibility and keeper shadow explorer",
	Long: `keepershadow draws a shooter's facing cone onto the goal line and
shows how much of it the goalkeeper blocks, both standing and at full reach.

Examples:
  keepershadow
  keepershadow play --config ./my-scene.yaml
  keepershadow report --keeper 470,250 --cone 45`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "configs/penalty.yaml", "Path to scenario YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(reportCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "keepershadow",
		Level:           level,
	})
	return logger, nil
}

// loadScenario reads --config, falling back to defaults when it is missing.
func loadScenario(logger *log.Logger) (*scenario.Config, error) {
	cfg, err := scenario.LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	logger.Debug("scenario loaded",
		"config", flagConfig,
		"goal", fmt.Sprintf("%v..%v", cfg.Goal.Left, cfg.Goal.Right),
		"cone", cfg.Cone.AngleDeg,
		"reach_multiplier", cfg.ReachMultiplier)
	return cfg, nil
}
