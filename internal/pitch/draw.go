package pitch

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/keepershadow/internal/core/geom"
	"chosenoffset.com/keepershadow/internal/core/visibility"
	"chosenoffset.com/keepershadow/internal/render"
)

const (
	stripeCount  = 10
	touchInset   = 25
	coneLength   = 1300 // Long enough to leave the screen from any shooter position
	barWidth     = 10
	labelGap     = 8
	labelScale   = 1.0
	hudLineInset = 40
)

var (
	stripeLight   = color.NRGBA{0x71, 0xba, 0x66, 0xff}
	stripeDark    = color.NRGBA{0x68, 0xb4, 0x5f, 0xff}
	lineWhite     = color.NRGBA{0xff, 0xff, 0xff, 0xe6}
	goalWhite     = color.NRGBA{0xff, 0xff, 0xff, 0xfa}
	coneFill      = color.NRGBA{0xff, 0xa6, 0x00, 0x38}
	coneEdge      = color.NRGBA{0xc9, 0x78, 0x00, 0xd9}
	goalBarColor  = color.NRGBA{0xdc, 0xe6, 0xf3, 0xff}
	visibleColor  = color.NRGBA{0x2e, 0xaf, 0x5d, 0xff}
	reachBarColor = color.NRGBA{0xde, 0x34, 0x2d, 0x8c}
	reachFill     = color.NRGBA{0xde, 0x34, 0x2d, 0x2e}
	standBarColor = color.NRGBA{0xde, 0x34, 0x2d, 0xff}
	standFill     = color.NRGBA{0xde, 0x34, 0x2d, 0x52}
	shooterColor  = color.NRGBA{0xff, 0x9f, 0x1a, 0xff}
	keeperColor   = color.NRGBA{0x25, 0x84, 0xff, 0xff}
	labelColor    = color.NRGBA{0x0f, 0x17, 0x22, 0xff}
	playerOutline = color.White
)

// Draw renders the pitch, the cone, the goal visibility bar and both players.
func (g *Game) Draw(screen render.Image) {
	screen.Clear()
	g.drawPitch(screen)
	g.drawCone(screen)
	g.drawGoalVisibility(screen)

	cfg := g.state.Config()
	g.drawPlayer(screen, g.state.Shooter, cfg.Shooter.Radius, shooterColor, "Attacker")
	g.drawPlayer(screen, g.state.Keeper, cfg.Keeper.Radius, keeperColor, "Goalkeeper")

	g.drawHUD(screen)
}

func (g *Game) drawPitch(screen render.Image) {
	w, h := float32(g.width), float32(g.height)
	stripe := w / stripeCount
	for i := 0; i < stripeCount; i++ {
		clr := stripeLight
		if i%2 == 1 {
			clr = stripeDark
		}
		g.renderer.FillRect(screen, float32(i)*stripe, 0, stripe+1, h, clr)
	}

	g.renderer.StrokeRect(screen, touchInset, touchInset, w-2*touchInset, h-2*touchInset, 3, lineWhite)

	goal := g.state.Config().Goal
	left, right := float32(goal.Left), float32(goal.Right)
	top, line := float32(goal.Y), float32(goal.LineY())
	g.renderer.StrokeLine(screen, left, top, left, line, 6, color.White)
	g.renderer.StrokeLine(screen, right, top, right, line, 6, color.White)
	g.renderer.StrokeLine(screen, left, line+0.5, right, line+0.5, 1, goalWhite)
}

func (g *Game) drawCone(screen render.Image) {
	cone := g.analysis.Cone
	origin := toVec(cone.Origin)
	leftEnd := toVec(project(cone.Origin, cone.LeftAngle, coneLength))
	rightEnd := toVec(project(cone.Origin, cone.RightAngle, coneLength))

	g.renderer.FillTriangle(screen, [3]render.Vec{origin, leftEnd, rightEnd}, coneFill)
	g.renderer.StrokeLine(screen, origin.X, origin.Y, leftEnd.X, leftEnd.Y, 2, coneEdge)
	g.renderer.StrokeLine(screen, origin.X, origin.Y, rightEnd.X, rightEnd.Y, 2, coneEdge)
}

func (g *Game) drawGoalVisibility(screen render.Image) {
	goal := g.analysis.Cone.Goal
	g.drawBar(screen, &visibility.Interval{Left: goal.Left, Right: goal.Right}, goalBarColor)

	if g.analysis.Cone.GoalInterval == nil {
		return
	}
	g.drawBar(screen, g.analysis.Cone.GoalInterval, visibleColor)

	// Reachable first so the standing shadow sits on top of it.
	if g.analysis.Reachable != nil {
		g.drawBar(screen, g.analysis.Reachable, reachBarColor)
		g.drawShadowWedge(screen, g.analysis.Reachable, reachFill)
	}
	if g.analysis.Standing != nil {
		g.drawBar(screen, g.analysis.Standing, standBarColor)
		g.drawShadowWedge(screen, g.analysis.Standing, standFill)
	}
}

func (g *Game) drawBar(screen render.Image, iv *visibility.Interval, clr color.Color) {
	y := float32(g.analysis.Cone.Goal.LineY)
	g.renderer.StrokeLine(screen, float32(iv.Left), y, float32(iv.Right), y, barWidth, clr)
}

func (g *Game) drawShadowWedge(screen render.Image, iv *visibility.Interval, clr color.Color) {
	y := float32(g.analysis.Cone.Goal.LineY)
	tri := [3]render.Vec{
		toVec(g.analysis.Cone.Origin),
		{X: float32(iv.Left), Y: y},
		{X: float32(iv.Right), Y: y},
	}
	g.renderer.FillTriangle(screen, tri, clr)
}

func (g *Game) drawPlayer(screen render.Image, pos geom.Point, radius float64, clr color.Color, label string) {
	x, y, r := float32(pos.X), float32(pos.Y), float32(radius)
	g.renderer.FillCircle(screen, x, y, r, clr)
	g.renderer.StrokeCircle(screen, x, y, r, 3, playerOutline)

	tw, _ := g.renderer.MeasureText(label, labelScale)
	g.renderer.DrawText(screen, label, int(pos.X)-tw/2, int(pos.Y+radius)+labelGap, labelColor, labelScale)
}

func (g *Game) drawHUD(screen render.Image) {
	a := g.analysis
	line := fmt.Sprintf("Cone %.0f deg  open goal: standing %.0f%%  reach %.0f%%",
		g.state.ConeAngleDeg, 100*a.OpenFraction(a.Standing), 100*a.OpenFraction(a.Reachable))
	g.renderer.DrawText(screen, line, hudLineInset, g.height-hudLineInset-12, color.White, 1)
	g.renderer.DrawText(screen, "drag players  Left/Right keeper  Up/Down cone  R reset  Esc quit", hudLineInset, g.height-hudLineInset, color.White, 1)
}

func project(origin geom.Point, angle, dist float64) geom.Point {
	return geom.Point{X: origin.X + math.Cos(angle)*dist, Y: origin.Y + math.Sin(angle)*dist}
}

func toVec(p geom.Point) render.Vec {
	return render.Vec{X: float32(p.X), Y: float32(p.Y)}
}
