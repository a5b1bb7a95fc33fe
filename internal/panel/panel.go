// Package panel hosts the file selection panel inside the app shell. It
// turns keys and picker results into selection transitions and draws the
// current snapshot.
package panel

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/filepanel/internal/core"
	"github.com/jask/filepanel/internal/logging"
	"github.com/jask/filepanel/internal/screens"
	"github.com/jask/filepanel/internal/selection"
	"github.com/jask/filepanel/internal/source"
	"github.com/jask/filepanel/internal/widgets"
)

type Options struct {
	Title    string
	Limits   selection.Limits
	Scanner  source.Scanner
	StartDir string
	Log      logrus.FieldLogger
}

type Panel struct {
	title    string
	sel      *selection.Panel
	scanner  source.Scanner
	startDir string
	cursor   int
	log      logrus.FieldLogger
}

func New(opts Options) *Panel {
	if opts.Title == "" {
		opts.Title = "File Upload"
	}
	if opts.StartDir == "" {
		opts.StartDir = "."
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	return &Panel{
		title:    opts.Title,
		sel:      selection.NewPanel(opts.Limits),
		scanner:  opts.Scanner,
		startDir: opts.StartDir,
		log:      opts.Log,
	}
}

func (p *Panel) Title() string { return p.title }
func (p *Panel) Scope() string { return core.ScopePanel }

// Selection exposes the underlying state owner.
func (p *Panel) Selection() *selection.Panel { return p.sel }

func (p *Panel) Cursor() int { return p.cursor }

func (p *Panel) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.CandidatesChosenMsg:
		if err := p.Submit(msg.Files); err != nil {
			return nil
		}
		if len(msg.Files) > 0 {
			m.SetStatus(fmt.Sprintf("Added %d file(s)", len(msg.Files)))
		}
		return nil
	case tea.KeyMsg:
		switch m.Keys().Action(msg.String(), core.ScopePanel) {
		case "choose":
			return p.openPicker(m)
		case "down":
			if p.cursor < p.sel.Len()-1 {
				p.cursor++
			}
		case "up":
			if p.cursor > 0 {
				p.cursor--
			}
		case "remove":
			p.removeAtCursor(m)
		case "submit":
			return m.CommandRegistry().Execute("submit", m)
		}
	}
	return nil
}

// Submit runs one candidate batch through validation and logs the outcome.
func (p *Panel) Submit(files []selection.File) error {
	err := p.sel.Submit(files)
	var verr *selection.ValidationError
	switch {
	case err == nil:
		if len(files) > 0 {
			p.log.WithFields(logrus.Fields{"op": "submit", "added": len(files), "count": p.sel.Len()}).Info("selection accepted")
		}
	case errors.As(err, &verr):
		p.log.WithFields(logrus.Fields{"op": "submit", "kind": verr.Kind.String(), "files": verr.Files, "count": p.sel.Len()}).Warn("selection rejected")
	default:
		p.log.WithError(err).Error("selection failed")
	}
	return err
}

func (p *Panel) openPicker(m *core.Model) tea.Cmd {
	s := screens.NewFilesScreen(p.scanner, p.startDir, p.sel.Limits(), m.Keys())
	m.PushScreen(s)
	return s.Load()
}

func (p *Panel) removeAtCursor(m *core.Model) {
	files := p.sel.Files()
	if !p.sel.RemoveAt(p.cursor) {
		return
	}
	removed := files[p.cursor]
	p.log.WithFields(logrus.Fields{"op": "remove", "index": p.cursor, "name": removed.Name, "count": p.sel.Len()}).Info("file removed")
	if p.cursor >= p.sel.Len() {
		p.cursor = max(0, p.sel.Len()-1)
	}
	m.SetStatus("Removed " + removed.Name)
}

// Commands are the palette entries for the panel.
func (p *Panel) Commands() []core.Command {
	scopes := []string{core.ScopePanel}
	return []core.Command{
		{
			ID:          "choose",
			Name:        "Choose files",
			Description: "Browse and mark files to add",
			Scopes:      scopes,
			Execute:     p.openPicker,
		},
		{
			ID:          "remove",
			Name:        "Remove file",
			Description: "Remove the file under the cursor",
			Scopes:      scopes,
			Execute: func(m *core.Model) tea.Cmd {
				p.removeAtCursor(m)
				return nil
			},
			Disabled: func(*core.Model) (bool, string) {
				if p.sel.Len() == 0 {
					return true, "No files selected"
				}
				return false, ""
			},
		},
		{
			ID:          "submit",
			Name:        "Upload",
			Description: "Hand the selected files over for upload",
			Scopes:      scopes,
			Execute: func(*core.Model) tea.Cmd {
				files, err := p.sel.Finalize()
				if err != nil {
					return core.ErrorCmd(err)
				}
				p.log.WithFields(logrus.Fields{"op": "finalize", "count": len(files)}).Info("selection finalized")
				return func() tea.Msg { return core.SubmitMsg{Files: files} }
			},
			Disabled: func(*core.Model) (bool, string) {
				if !p.sel.CanSubmit() {
					return true, "Select at least one file"
				}
				return false, ""
			},
		},
		{
			ID:          "quit",
			Name:        "Quit",
			Description: "Exit without uploading",
			Scopes:      scopes,
			Execute:     func(*core.Model) tea.Cmd { return tea.Quit },
		},
	}
}

func (p *Panel) Build(m *core.Model) widgets.Widget {
	return view{p: p}
}
