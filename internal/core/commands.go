package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a palette entry. Disabled, when set, is asked every time the
// command is listed or run and may give a reason for the status bar.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

func (c Command) state(m *Model) (bool, string) {
	if c.Disabled == nil {
		return false, ""
	}
	return c.Disabled(m)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

// CommandRegistry keeps commands in registration order; registering an
// existing ID replaces it in place.
type CommandRegistry struct {
	commands []Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if i := r.index(c.ID); i >= 0 {
		r.commands[i] = c
		return
	}
	r.commands = append(r.commands, c)
}

func (r *CommandRegistry) index(id string) int {
	return slices.IndexFunc(r.commands, func(c Command) bool { return c.ID == id })
}

// Search lists the commands available in scope that fuzzily match query.
// Enabled commands come first, then better matches, then registration order.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.TrimSpace(query)
	type ranked struct {
		res   CommandResult
		score int
		order int
	}
	rows := make([]ranked, 0, len(r.commands))
	for i, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		ok, score := fuzzyMatchScore(c.Name+" "+c.Description+" "+c.ID, q)
		if !ok {
			continue
		}
		disabled, reason := c.state(m)
		rows = append(rows, ranked{
			res:   CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description, Disabled: disabled, Reason: reason},
			score: score,
			order: i,
		})
	}
	slices.SortStableFunc(rows, func(a, b ranked) int {
		switch {
		case a.res.Disabled != b.res.Disabled:
			if a.res.Disabled {
				return 1
			}
			return -1
		case a.score != b.score:
			return b.score - a.score
		default:
			return a.order - b.order
		}
	})
	out := make([]CommandResult, len(rows))
	for i, row := range rows {
		out[i] = row.res
	}
	return out
}

// Execute runs the command, or reports why it cannot run in the status bar.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	i := r.index(id)
	if i < 0 {
		return StatusCmd("Unknown command: " + id)
	}
	c := r.commands[i]
	if disabled, reason := c.state(m); disabled {
		if reason == "" {
			reason = c.Name + " is unavailable"
		}
		return StatusCmd(reason)
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
