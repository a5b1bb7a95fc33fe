package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/filepanel/internal/selection"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

// CandidatesChosenMsg carries one batch of raw descriptors from a picker.
// It always goes to the body, even when a screen is open.
type CandidatesChosenMsg struct {
	Files []selection.File
}

// SubmitMsg ends the program with Files as the submitted selection.
type SubmitMsg struct {
	Files []selection.File
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
