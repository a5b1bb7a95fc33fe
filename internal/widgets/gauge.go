package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Gauge is a one-row capacity bar. Percent is on the 0..100 scale and is
// clamped before drawing.
type Gauge struct {
	Percent float64
	Caption string
}

func (g Gauge) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	pct := min(max(g.Percent, 0), 100)
	label := fmt.Sprintf(" %3.0f%%", pct)
	if g.Caption != "" {
		label = " " + g.Caption + label
	}
	labelStyle := lipgloss.NewStyle().Foreground(colorSubtext0)

	barWidth := width - ansi.StringWidth(label)
	if barWidth < 4 {
		return padRight(labelStyle.Render(strings.TrimSpace(label)), width)
	}
	bar := progress.New(
		progress.WithSolidFill(string(gaugeColor(pct))),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
	bar.EmptyColor = string(colorSurface1)
	return padRight(bar.ViewAs(pct/100)+labelStyle.Render(label), width)
}

func gaugeColor(pct float64) lipgloss.Color {
	switch {
	case pct >= 100:
		return colorRed
	case pct >= 80:
		return colorYellow
	default:
		return colorGreen
	}
}
