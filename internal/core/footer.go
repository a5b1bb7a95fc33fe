package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HelpBindings converts the registry entries for scope into bubbles help
// bindings, one per action.
func HelpBindings(r *KeyRegistry, scope string) []key.Binding {
	if r == nil {
		return nil
	}
	bindings := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description)))
	}
	return out
}

func footerHelp(width int) help.Model {
	h := help.New()
	h.Width = width
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(mochaBlue).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(mochaSubtext)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(mochaOverlay)
	h.Styles.Ellipsis = lipgloss.NewStyle().Foreground(mochaOverlay)
	return h
}

// RenderFooter shows the short help for whatever scope has the keyboard.
func RenderFooter(m Model) string {
	width := max(1, m.width)
	line := footerHelp(width).ShortHelpView(HelpBindings(m.keys, m.ActiveScope()))
	if line == "" {
		line = "No shortcuts"
	}
	return fillRow(barStyle, width, line)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusStyle
	if m.statusErr {
		style = alertStyle
	}
	return fillRow(style, max(1, m.width), msg)
}

// fillRow renders text as a single row of exactly width columns.
func fillRow(style lipgloss.Style, width int, text string) string {
	text = ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return style.Width(width).MaxWidth(width).Render(text)
}

func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	return strings.Join(lines[:min(len(lines), height)], "\n")
}

func TrimToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}
