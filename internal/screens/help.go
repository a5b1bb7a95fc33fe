package screens

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/jask/filepanel/internal/core"
	"github.com/jask/filepanel/internal/selection"
)

// HelpScreen lists the panel bindings and the active limits.
type HelpScreen struct {
	bindings []key.Binding
	limits   selection.Limits
	help     help.Model
}

func NewHelpScreen(keys *core.KeyRegistry, scope string, limits selection.Limits) *HelpScreen {
	h := help.New()
	h.ShowAll = true
	return &HelpScreen{bindings: core.HelpBindings(keys, scope), limits: limits, help: h}
}

func (s *HelpScreen) Title() string { return "Help" }
func (s *HelpScreen) Scope() string { return core.ScopeHelp }

func (s *HelpScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "?", "q", "enter":
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *HelpScreen) View(width, height int) string {
	s.help.Width = width
	columns := make([][]key.Binding, 0, 2)
	half := (len(s.bindings) + 1) / 2
	if half > 0 {
		columns = append(columns, s.bindings[:half], s.bindings[half:])
	}
	lines := []string{
		"Keys",
		"",
		s.help.FullHelpView(columns),
		"",
		"Limits",
		"",
		"  Up to " + strconv.Itoa(s.limits.MaxFiles) + " files",
		"  At most " + humanize.IBytes(uint64(max(s.limits.MaxFileSize, 0))) + " per file",
		"  Types: " + strings.Join(s.limits.TypeLabels(), ", "),
		"",
		"Esc close.",
	}
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}
