package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/filepanel/internal/core"
)

// CommandOption is one palette row.
type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (o CommandOption) Title() string {
	if o.Disabled && o.Reason != "" {
		return o.Name + " (" + o.Reason + ")"
	}
	return o.Name
}
func (o CommandOption) Description() string { return o.Desc }
func (o CommandOption) FilterValue() string { return o.Name }

// CommandScreen is a searchable command palette. Filtering is done by the
// search callback, not by the list.
type CommandScreen struct {
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	query    textinput.Model
	rows     list.Model
	last     string
}

var paletteTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)

func NewCommandScreen(search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	q := textinput.New()
	q.Prompt = "> "
	q.Placeholder = "type a command"
	q.Focus()

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	rows := list.New(nil, delegate, 60, 12)
	rows.SetShowTitle(false)
	rows.SetShowStatusBar(false)
	rows.SetShowHelp(false)
	rows.SetFilteringEnabled(false)

	s := &CommandScreen{search: search, onSelect: onSelect, query: q, rows: rows}
	s.reload()
	return s
}

// CommandScreenFor opens the palette over the model's command registry.
// A chosen command comes back through CommandExecuteMsg so it runs against
// the live model.
func CommandScreenFor(m *core.Model, scope string) core.Screen {
	reg := m.CommandRegistry()
	search := func(query string) []CommandOption {
		found := reg.Search(query, scope, m)
		out := make([]CommandOption, len(found))
		for i, r := range found {
			out[i] = CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason}
		}
		return out
	}
	return NewCommandScreen(search, func(id string) tea.Msg {
		return core.CommandExecuteMsg{CommandID: id}
	})
}

func (s *CommandScreen) Title() string { return "Commands" }
func (s *CommandScreen) Scope() string { return core.ScopeCommand }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return s, nil, true
		case "enter":
			return s.choose()
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			s.rows, cmd = s.rows.Update(msg)
			return s, cmd, false
		}
	}
	var cmd tea.Cmd
	s.query, cmd = s.query.Update(msg)
	if v := strings.TrimSpace(s.query.Value()); v != s.last {
		s.last = v
		s.reload()
	}
	return s, cmd, false
}

func (s *CommandScreen) choose() (core.Screen, tea.Cmd, bool) {
	opt, ok := s.rows.SelectedItem().(CommandOption)
	switch {
	case !ok:
		return s, nil, false
	case opt.Disabled:
		return s, core.StatusCmd(opt.Reason), true
	case s.onSelect == nil:
		return s, nil, true
	}
	return s, func() tea.Msg { return s.onSelect(opt.ID) }, true
}

func (s *CommandScreen) reload() {
	found := s.search(s.last)
	items := make([]list.Item, len(found))
	for i, o := range found {
		items[i] = o
	}
	s.rows.SetItems(items)
	s.rows.Select(0)
}

// Options returns the rows currently listed.
func (s *CommandScreen) Options() []CommandOption {
	out := make([]CommandOption, 0, len(s.rows.Items()))
	for _, it := range s.rows.Items() {
		if o, ok := it.(CommandOption); ok {
			out = append(out, o)
		}
	}
	return out
}

func (s *CommandScreen) View(width, height int) string {
	s.rows.SetSize(width, max(4, height-2))
	return paletteTitleStyle.Render("Commands") + "\n" + s.query.View() + "\n" + s.rows.View()
}
