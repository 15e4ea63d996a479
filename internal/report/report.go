// Package report renders a one-frame visibility analysis as styled text for
// the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chosenoffset.com/keepershadow/internal/core/geom"
	"chosenoffset.com/keepershadow/internal/core/visibility"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	labelStyle = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("8"))
	openStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	shutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Render formats the scene inputs and its analysis.
func Render(scene visibility.Scene, a visibility.Analysis) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Keeper shadow"))
	b.WriteString("\n\n")

	row(&b, "goal", fmt.Sprintf("x %.2f..%.2f at y %.2f", scene.Goal.Left, scene.Goal.Right, scene.Goal.LineY))
	row(&b, "shooter", point(scene.Shooter))
	row(&b, "keeper", fmt.Sprintf("%s r %.2f (+%.2f reach)", point(scene.Keeper.Pos), scene.Keeper.Radius, scene.ExtraReach()))
	row(&b, "cone", fmt.Sprintf("%.1f° centred on %.2f° (%.2f°..%.2f°)",
		scene.ConeAngleDeg,
		geom.Degrees(a.Cone.CenterAngle),
		geom.Degrees(a.Cone.LeftAngle),
		geom.Degrees(a.Cone.RightAngle)))
	b.WriteString("\n")

	row(&b, "visible goal", interval(a.Cone.GoalInterval))
	row(&b, "standing shadow", interval(a.Standing))
	row(&b, "reachable shadow", interval(a.Reachable))
	b.WriteString("\n")

	row(&b, "open (standing)", percent(a.OpenFraction(a.Standing), a.VisibleWidth()))
	row(&b, "open (reachable)", percent(a.OpenFraction(a.Reachable), a.VisibleWidth()))

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func point(p geom.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

func interval(iv *visibility.Interval) string {
	if iv == nil {
		return "none"
	}
	return fmt.Sprintf("%.2f..%.2f (width %.2f)", iv.Left, iv.Right, iv.Width())
}

func percent(open, visible float64) string {
	if visible <= 0 {
		return shutStyle.Render("no goal visible")
	}
	s := fmt.Sprintf("%.1f%%", 100*open)
	if open == 0 {
		return shutStyle.Render(s)
	}
	return openStyle.Render(s)
}
