package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/filepanel/internal/logging"
	"github.com/jask/filepanel/internal/selection"
	"github.com/jask/filepanel/internal/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Body is the always-present content under any open screens.
type Body interface {
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type BodyInitializer interface {
	InitBody(m *Model) tea.Cmd
}

type Model struct {
	width     int
	height    int
	appName   string
	body      Body
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	submitted []selection.File
	Log       logrus.FieldLogger

	OpenHelpModal    func(m *Model) Screen
	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(appName string, body Body, keys *KeyRegistry, commands *CommandRegistry, log logrus.FieldLogger) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	if log == nil {
		log = logging.Discard()
	}
	return Model{
		appName:  appName,
		body:     body,
		keys:     keys,
		commands: commands,
		Log:      log,
		status:   "Ready",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	if initBody, ok := m.body.(BodyInitializer); ok {
		return initBody.InitBody(&m)
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.body == nil {
		return "app"
	}
	return m.body.Scope()
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) ScreenCount() int { return m.screens.Len() }

func (m Model) Keys() *KeyRegistry { return m.keys }

func (m *Model) CommandRegistry() *CommandRegistry { return m.commands }

// Submitted returns the selection handed over by SubmitMsg, or nil when the
// program ended without a submit.
func (m Model) Submitted() []selection.File {
	return append([]selection.File(nil), m.submitted...)
}
