package widgets

import "github.com/charmbracelet/lipgloss"

type Button struct {
	Label    string
	Disabled bool
	Focused  bool
}

func (b Button) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	switch {
	case b.Disabled:
		style = style.Foreground(colorOverlay0).Background(colorSurface0).Bold(false)
	case b.Focused:
		style = style.Foreground(colorBase).Background(colorGreen)
	default:
		style = style.Foreground(colorBase).Background(colorBlue)
	}
	return padRight(style.Render(b.Label), width)
}
