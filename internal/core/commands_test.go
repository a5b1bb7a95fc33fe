package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCommandExecuteHonoursDisabled(t *testing.T) {
	ran := false
	allowed := false
	reg := NewCommandRegistry([]Command{{
		ID:   "submit",
		Name: "Upload",
		Execute: func(*Model) tea.Cmd {
			ran = true
			return nil
		},
		Disabled: func(*Model) (bool, string) {
			if allowed {
				return false, ""
			}
			return true, "Select at least one file"
		},
	}})
	m := newTestModel(&testBody{})

	cmd := reg.Execute("submit", &m)
	if ran {
		t.Fatalf("disabled command ran")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text != "Select at least one file" {
		t.Fatalf("unexpected status %#v", cmd())
	}

	allowed = true
	reg.Execute("submit", &m)
	if !ran {
		t.Fatalf("enabled command did not run")
	}
}

func TestCommandSearchSortsEnabledFirst(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Disabled: func(*Model) (bool, string) { return true, "no" }},
		{ID: "b", Name: "Beta"},
		{ID: "c", Name: "Gamma", Scopes: []string{"elsewhere"}},
		{Name: "no id"},
	})
	m := newTestModel(&testBody{})
	got := reg.Search("", ScopePanel, &m)
	if len(got) != 2 || got[0].CommandID != "b" || !got[1].Disabled || got[1].Reason != "no" {
		t.Fatalf("unexpected results %+v", got)
	}
	if got := reg.Search("alp", ScopePanel, &m); len(got) != 1 || got[0].CommandID != "a" {
		t.Fatalf("query filter failed: %+v", got)
	}
}

func TestCommandExecuteUnknown(t *testing.T) {
	m := newTestModel(&testBody{})
	msg := NewCommandRegistry(nil).Execute("nope", &m)().(StatusMsg)
	if msg.Text != "Unknown command: nope" {
		t.Fatalf("status = %q", msg.Text)
	}
}

func TestCommandExecuteMsgRunsThroughModel(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{{ID: "go", Name: "Go", Execute: func(*Model) tea.Cmd { ran = true; return nil }}})
	m := NewModel("t", &testBody{}, nil, reg, nil)
	m.Update(CommandExecuteMsg{CommandID: "go"})
	if !ran {
		t.Fatalf("command not executed")
	}
}
