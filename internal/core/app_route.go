package core

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case CandidatesChosenMsg:
		if m.body == nil {
			return m, nil
		}
		return m, m.body.Update(&m, msg)
	case SubmitMsg:
		m.submitted = slices.Clone(msg.Files)
		m.quitting = true
		m.Log.WithField("files", len(msg.Files)).Info("selection submitted")
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			return m.updateTopScreen(top, msg)
		}

		scope := m.ActiveScope()
		switch m.keys.Action(msg.String(), scope) {
		case "quit":
			m.quitting = true
			return m, tea.Quit
		case "help":
			if m.OpenHelpModal != nil {
				m.screens.Push(m.OpenHelpModal(&m))
				return m, nil
			}
		case "open-command-palette":
			if m.OpenCommandModal != nil {
				m.screens.Push(m.OpenCommandModal(&m, scope))
				return m, nil
			}
		}
		if m.body != nil {
			return m, m.body.Update(&m, msg)
		}
		return m, nil
	}

	if top := m.screens.Top(); top != nil {
		return m.updateTopScreen(top, msg)
	}
	if m.body != nil {
		return m, m.body.Update(&m, msg)
	}
	return m, nil
}

func (m Model) updateTopScreen(top Screen, msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		m.Log.WithFields(logrus.Fields{"screen": top.Scope()}).Debug("screen closed")
		return m, cmd
	}
	m.screens.ReplaceTop(next)
	return m, cmd
}
