package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorBlue).
	Padding(0, 1)

// RenderPopup draws popup in a bordered card centred over base. The result
// is exactly width x height; base shows through around the card.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := strings.Split(base, "\n")
	if len(canvas) > height {
		canvas = canvas[:height]
	}
	for len(canvas) < height {
		canvas = append(canvas, "")
	}

	card := strings.Split(popupStyle.Render(popup), "\n")
	if len(card) > height {
		card = card[:height]
	}
	cardWidth := 0
	for _, line := range card {
		cardWidth = max(cardWidth, ansi.StringWidth(line))
	}
	cardWidth = min(cardWidth, width)
	top := (height - len(card)) / 2
	left := (width - cardWidth) / 2

	for i := range canvas {
		row := padRight(canvas[i], width)
		if i >= top && i < top+len(card) {
			row = splice(row, padRight(card[i-top], cardWidth), left, width)
		}
		canvas[i] = row
	}
	return strings.Join(canvas, "\n")
}

// splice replaces the columns of row starting at col with patch.
func splice(row, patch string, col, width int) string {
	end := col + ansi.StringWidth(patch)
	head := ansi.Truncate(row, col, "")
	tail := ansi.TruncateLeft(row, end, "")
	return padRight(head+patch+tail, width)
}
