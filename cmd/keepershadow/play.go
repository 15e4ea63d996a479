package main

import (
	"github.com/spf13/cobra"

	"chosenoffset.com/keepershadow/internal/pitch"
	ebitenrender "chosenoffset.com/keepershadow/internal/render/ebiten"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive pitch",
	Long: `Open a window with the penalty-box scene.

Controls:
  Drag       - Move the attacker or the goalkeeper
  Up/Down    - Widen or narrow the shooting cone
  R          - Reset the scenario
  Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadScenario(logger)
	if err != nil {
		return err
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	game := pitch.NewGame(cfg, renderer, inputMgr, logger)

	engine.SetWindowSize(cfg.Pitch.Width, cfg.Pitch.Height)
	engine.SetWindowTitle("Keeper Shadow")
	engine.SetWindowResizable(true)

	logger.Info("starting pitch", "width", cfg.Pitch.Width, "height", cfg.Pitch.Height)
	if err := engine.RunGame(game); err != nil {
		logger.Error("game loop stopped", "error", err)
		return err
	}
	logger.Info("bye")
	return nil
}
