// Package pitch is the interactive penalty-box scene. It owns the mutable
// scenario state, turns input into state changes and re-runs the visibility
// analysis whenever the scene snapshot changes.
package pitch

import (
	"github.com/charmbracelet/log"

	"chosenoffset.com/keepershadow/internal/core/geom"
	"chosenoffset.com/keepershadow/internal/core/visibility"
	"chosenoffset.com/keepershadow/internal/render"
	"chosenoffset.com/keepershadow/internal/scenario"
)

// keeperNudge is how far a held Left/Right arrow moves the keeper per tick.
const keeperNudge = 2.0

// Game holds the scene state and implements render.Game.
type Game struct {
	state    *scenario.State
	renderer render.Renderer
	input    render.InputManager
	logger   *log.Logger

	width, height int

	dragging scenario.Entity
	scene    visibility.Scene
	analysis visibility.Analysis
}

// NewGame creates the scene at the configured start positions.
func NewGame(cfg *scenario.Config, renderer render.Renderer, input render.InputManager, logger *log.Logger) *Game {
	g := &Game{
		state:    scenario.NewState(cfg),
		renderer: renderer,
		input:    input,
		logger:   logger,
		width:    cfg.Pitch.Width,
		height:   cfg.Pitch.Height,
	}
	g.recompute()
	return g
}

// State returns the mutable scene state.
func (g *Game) State() *scenario.State {
	return g.state
}

// Analysis returns the visibility analysis of the current scene.
func (g *Game) Analysis() visibility.Analysis {
	return g.analysis
}

// Dragging returns the player currently held by the pointer.
func (g *Game) Dragging() scenario.Entity {
	return g.dragging
}

// Update handles input and refreshes the analysis when the scene changed.
func (g *Game) Update() error {
	if g.input.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	g.handleKeys()
	g.handlePointer()

	if g.state.Scene() != g.scene {
		g.recompute()
	}
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case g.input.IsKeyJustPressed(render.KeyUp):
		g.state.StepConeAngle(1)
		g.logger.Debug("cone widened", "degrees", g.state.ConeAngleDeg)
	case g.input.IsKeyJustPressed(render.KeyDown):
		g.state.StepConeAngle(-1)
		g.logger.Debug("cone narrowed", "degrees", g.state.ConeAngleDeg)
	}

	switch {
	case g.input.IsKeyPressed(render.KeyLeft):
		g.nudgeKeeper(-keeperNudge)
	case g.input.IsKeyPressed(render.KeyRight):
		g.nudgeKeeper(keeperNudge)
	}

	if g.input.IsKeyJustPressed(render.KeyR) {
		g.state.Reset()
		g.dragging = scenario.EntityNone
		g.logger.Debug("scenario reset")
	}
}

// nudgeKeeper slides the keeper along x under the usual drag limits.
func (g *Game) nudgeKeeper(dx float64) {
	k := g.state.Keeper
	g.state.Drag(scenario.EntityKeeper, geom.Point{X: k.X + dx, Y: k.Y})
}

func (g *Game) handlePointer() {
	cx, cy := g.input.GetCursorPosition()
	pos := geom.Point{X: float64(cx), Y: float64(cy)}

	if g.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.dragging = g.state.Pick(pos)
		if g.dragging != scenario.EntityNone {
			g.logger.Debug("drag started", "player", g.dragging, "x", pos.X, "y", pos.Y)
		}
	}

	if g.dragging == scenario.EntityNone {
		return
	}

	if g.input.IsMouseButtonPressed(render.MouseButtonLeft) {
		g.state.Drag(g.dragging, pos)
	}

	if g.input.IsMouseButtonJustReleased(render.MouseButtonLeft) {
		g.logger.Debug("drag ended", "player", g.dragging, "shooter", g.state.Shooter, "keeper", g.state.Keeper)
		g.dragging = scenario.EntityNone
	}
}

func (g *Game) recompute() {
	g.scene = g.state.Scene()
	g.analysis = visibility.Analyze(g.scene)
}

// Layout keeps the pitch at its configured logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
