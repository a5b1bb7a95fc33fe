package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewFillsWindow(t *testing.T) {
	m := newTestModel(&testBody{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	view := ansi.Strip(next.(Model).View())
	lines := strings.Split(view, "\n")
	if len(lines) != 12 {
		t.Fatalf("view height = %d, want 12", len(lines))
	}
	if !strings.Contains(lines[0], "filepanel") || !strings.Contains(lines[0], "Body") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Ready") {
		t.Fatalf("status = %q", lines[1])
	}
	if !strings.Contains(view, "body") {
		t.Fatalf("body missing")
	}
	if !strings.Contains(lines[11], "choose files") {
		t.Fatalf("footer = %q", lines[11])
	}
}

func TestViewOverlaysScreen(t *testing.T) {
	m := newTestModel(&testBody{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 16})
	updated := next.(Model)
	updated.PushScreen(&fakeScreen{})
	view := ansi.Strip(updated.View())
	if !strings.Contains(view, "screen") {
		t.Fatalf("screen view missing")
	}
	if !strings.Contains(strings.Split(view, "\n")[0], "Screen") {
		t.Fatalf("header should name the open screen")
	}
	if strings.Contains(view, "choose files") {
		t.Fatalf("footer should show bindings of the screen scope")
	}
}

func TestHelpBindingsJoinKeys(t *testing.T) {
	bindings := HelpBindings(NewKeyRegistry(DefaultKeyBindings()), ScopePanel)
	found := false
	for _, b := range bindings {
		if b.Help().Desc == "remove" {
			found = b.Help().Key == "d/x/delete"
		}
	}
	if !found {
		t.Fatalf("remove binding help missing")
	}
	if HelpBindings(nil, ScopePanel) != nil {
		t.Fatalf("nil registry should yield nil")
	}
}

func TestRenderStatusBarError(t *testing.T) {
	m := newTestModel(&testBody{})
	m.SetError(errTest("boom"))
	if got := ansi.Strip(RenderStatusBar(m)); !strings.HasPrefix(got, "boom") {
		t.Fatalf("status bar = %q", got)
	}
	m.SetError(nil)
	if got := ansi.Strip(RenderStatusBar(m)); !strings.HasPrefix(got, "Ready") {
		t.Fatalf("status bar = %q", got)
	}
}
