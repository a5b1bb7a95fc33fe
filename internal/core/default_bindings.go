package core

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"o"}, Action: "choose", Description: "choose files", Scopes: []string{ScopePanel}},
		{Keys: []string{"j", "down"}, Action: "down", Description: "down", Scopes: []string{ScopePanel}},
		{Keys: []string{"k", "up"}, Action: "up", Description: "up", Scopes: []string{ScopePanel}},
		{Keys: []string{"d", "x", "delete"}, Action: "remove", Description: "remove", Scopes: []string{ScopePanel}},
		{Keys: []string{"u"}, Action: "submit", Description: "upload", Scopes: []string{ScopePanel}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{ScopePanel}},
		{Keys: []string{"?"}, Action: "help", Description: "help", Scopes: []string{ScopePanel}},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopePanel}},
		{Keys: []string{"space"}, Action: "toggle", Description: "mark", Scopes: []string{ScopeFiles}},
		{Keys: []string{"enter"}, Action: "select", Description: "open/confirm", Scopes: []string{ScopeFiles, ScopeCommand}},
		{Keys: []string{"backspace"}, Action: "parent", Description: "parent dir", Scopes: []string{ScopeFiles}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeFiles, ScopeHelp, ScopeCommand}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Scopes and descriptions are kept.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
