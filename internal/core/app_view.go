package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/filepanel/internal/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	chrome := []string{renderHeader(m), RenderStatusBar(m)}
	footer := RenderFooter(m)
	bodyHeight := m.height - len(chrome) - lipgloss.Height(footer)

	body := ""
	if bodyHeight > 0 {
		bodyWidth := max(1, m.width-2)
		if m.body != nil {
			body = m.body.Build(&m).Render(bodyWidth, bodyHeight)
		}
		if top := m.screens.Top(); top != nil {
			popup := top.View(max(20, m.width-12), max(8, bodyHeight-4))
			body = widgets.RenderPopup(body, popup, bodyWidth, bodyHeight)
		}
		chrome = append(chrome, padRows(body, bodyHeight))
	}
	chrome = append(chrome, footer)
	view := padRows(strings.Join(chrome, "\n"), max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// renderHeader puts the app name on the left and the title of whatever has
// the keyboard on the right.
func renderHeader(m Model) string {
	width := max(1, m.width)
	crumb := ""
	if top := m.screens.Top(); top != nil {
		crumb = top.Title()
	} else if m.body != nil {
		crumb = m.body.Title()
	}
	left := brandStyle.Render(m.appName)
	right := crumbStyle.Render(crumb)
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return fillRow(barStyle, width, left+barStyle.Render(strings.Repeat(" ", gap))+right)
}

func padRows(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
