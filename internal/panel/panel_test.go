package panel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/jask/filepanel/internal/core"
	"github.com/jask/filepanel/internal/selection"
)

func pdf(name string) selection.File {
	return selection.File{Name: name, Size: 2048, MIMEType: "application/pdf", Path: "/tmp/" + name}
}

func newHarness(t *testing.T) (*Panel, core.Model, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	p := New(Options{Limits: selection.DefaultLimits(), StartDir: t.TempDir(), Log: logger})
	m := core.NewModel("filepanel", p, core.NewKeyRegistry(core.DefaultKeyBindings()), core.NewCommandRegistry(p.Commands()), logger)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	return p, next.(core.Model), hook
}

func press(m core.Model, k string) (core.Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "delete":
		msg = tea.KeyMsg{Type: tea.KeyDelete}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	return next.(core.Model), cmd
}

func choose(m core.Model, files ...selection.File) core.Model {
	next, _ := m.Update(core.CandidatesChosenMsg{Files: files})
	return next.(core.Model)
}

func TestChosenFilesAreAppended(t *testing.T) {
	p, m, hook := newHarness(t)
	m = choose(m, pdf("a.pdf"), pdf("b.pdf"))

	if p.Selection().Len() != 2 {
		t.Fatalf("len = %d, want 2", p.Selection().Len())
	}
	if status, _ := m.Status(); status != "Added 2 file(s)" {
		t.Fatalf("status = %q", status)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Message != "selection accepted" || entry.Data["count"] != 2 {
		t.Fatalf("unexpected log entry %+v", entry)
	}
}

func TestRejectedBatchShowsBannerAndKeepsSelection(t *testing.T) {
	p, m, hook := newHarness(t)
	m = choose(m, pdf("keep.pdf"))
	m = choose(m, selection.File{Name: "notes.txt", Size: 10, MIMEType: "text/plain"})

	if got := p.Selection().Files(); len(got) != 1 || got[0].Name != "keep.pdf" {
		t.Fatalf("selection changed on rejection: %+v", got)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Only PDF and JPEG files are allowed.") {
		t.Fatalf("banner missing:\n%s", view)
	}
	entry := hook.LastEntry()
	if entry.Level != logrus.WarnLevel || entry.Data["kind"] != "type_not_allowed" {
		t.Fatalf("unexpected log entry %+v", entry)
	}

	m = choose(m, pdf("next.pdf"))
	if view := ansi.Strip(m.View()); strings.Contains(view, "Only PDF") {
		t.Fatalf("banner should clear after a successful batch")
	}
}

func TestCountLimitBanner(t *testing.T) {
	p, m, _ := newHarness(t)
	batch := make([]selection.File, 11)
	for i := range batch {
		batch[i] = pdf("f.pdf")
	}
	m = choose(m, batch...)
	if p.Selection().Len() != 0 {
		t.Fatalf("nothing should be added")
	}
	if !strings.Contains(ansi.Strip(m.View()), "You can only upload a maximum of 10 files.") {
		t.Fatalf("count banner missing")
	}
}

func TestRemoveAtCursor(t *testing.T) {
	p, m, _ := newHarness(t)
	m = choose(m, pdf("a.pdf"), pdf("b.pdf"), pdf("c.pdf"))

	m, _ = press(m, "j")
	if p.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", p.Cursor())
	}
	m, _ = press(m, "d")
	names := []string{}
	for _, f := range p.Selection().Files() {
		names = append(names, f.Name)
	}
	if strings.Join(names, ",") != "a.pdf,c.pdf" {
		t.Fatalf("files = %v", names)
	}
	if status, _ := m.Status(); status != "Removed b.pdf" {
		t.Fatalf("status = %q", status)
	}

	m, _ = press(m, "j")
	m, _ = press(m, "delete")
	if p.Selection().Len() != 1 || p.Cursor() != 0 {
		t.Fatalf("after removing last row len=%d cursor=%d", p.Selection().Len(), p.Cursor())
	}
	m, _ = press(m, "x")
	m, _ = press(m, "x")
	if p.Selection().Len() != 0 || p.Cursor() != 0 {
		t.Fatalf("remove on empty list should be a no-op")
	}
}

func TestRemoveKeepsErrorBanner(t *testing.T) {
	p, m, _ := newHarness(t)
	m = choose(m, pdf("a.pdf"), pdf("b.pdf"))
	m = choose(m, selection.File{Name: "huge.pdf", Size: selection.DefaultMaxFileSize + 1, MIMEType: "application/pdf"})
	m, _ = press(m, "d")
	if p.Selection().Len() != 1 {
		t.Fatalf("len = %d", p.Selection().Len())
	}
	if !strings.Contains(ansi.Strip(m.View()), "File must not exceed 10MB in size.") {
		t.Fatalf("error should survive removal")
	}
}

func TestSubmitDisabledWhenEmpty(t *testing.T) {
	_, m, _ := newHarness(t)
	m, cmd := press(m, "u")
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	msg, ok := cmd().(core.StatusMsg)
	if !ok || msg.Text != "Select at least one file" {
		t.Fatalf("unexpected message %#v", cmd())
	}
	if m.Submitted() != nil {
		t.Fatalf("nothing should be submitted")
	}
}

func TestSubmitHandsOverSelection(t *testing.T) {
	_, m, _ := newHarness(t)
	m = choose(m, pdf("a.pdf"), pdf("b.pdf"))
	m, cmd := press(m, "u")
	msg, ok := cmd().(core.SubmitMsg)
	if !ok || len(msg.Files) != 2 {
		t.Fatalf("unexpected message %#v", cmd())
	}
	next, quit := m.Update(msg)
	if quit == nil {
		t.Fatalf("submit should quit the program")
	}
	got := next.(core.Model).Submitted()
	if len(got) != 2 || got[0].Name != "a.pdf" || got[1].Name != "b.pdf" {
		t.Fatalf("submitted = %+v", got)
	}
}

func TestChooseOpensFilePicker(t *testing.T) {
	_, m, _ := newHarness(t)
	m, cmd := press(m, "o")
	if cmd == nil {
		t.Fatalf("expected a directory scan command")
	}
	if m.ScreenCount() != 1 || m.ActiveScope() != core.ScopeFiles {
		t.Fatalf("file picker not open, scope %q", m.ActiveScope())
	}
	next, _ := m.Update(cmd())
	view := ansi.Strip(next.(core.Model).View())
	if !strings.Contains(view, "../") || !strings.Contains(view, "0 marked") {
		t.Fatalf("file picker view:\n%s", view)
	}
}

func TestViewLayout(t *testing.T) {
	_, m, _ := newHarness(t)
	view := ansi.Strip(m.View())
	for _, want := range []string{"File Upload", "Choose Files", "0/10", "Upload"} {
		if !strings.Contains(view, want) {
			t.Fatalf("empty view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Selected files") {
		t.Fatalf("file list should be hidden when empty")
	}

	m = choose(m, pdf("a.pdf"), pdf("b.pdf"), pdf("c.pdf"))
	view = ansi.Strip(m.View())
	for _, want := range []string{"Selected files: 3", "3/10", "30%", "a.pdf", "2.0 KiB", "[d] remove"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestCommandsReflectState(t *testing.T) {
	p, m, _ := newHarness(t)
	reg := m.CommandRegistry()
	results := reg.Search("", core.ScopePanel, &m)
	disabled := map[string]string{}
	for _, r := range results {
		if r.Disabled {
			disabled[r.CommandID] = r.Reason
		}
	}
	if disabled["submit"] != "Select at least one file" || disabled["remove"] != "No files selected" {
		t.Fatalf("disabled = %v", disabled)
	}
	if err := p.Submit([]selection.File{pdf("a.pdf")}); err != nil {
		t.Fatal(err)
	}
	for _, r := range reg.Search("", core.ScopePanel, &m) {
		if r.Disabled {
			t.Fatalf("%s should be enabled", r.CommandID)
		}
	}
}
