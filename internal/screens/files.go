package screens

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jask/filepanel/internal/core"
	"github.com/jask/filepanel/internal/selection"
	"github.com/jask/filepanel/internal/source"
)

// EntriesLoadedMsg delivers one directory listing to the file picker.
type EntriesLoadedMsg struct {
	Dir     string
	Entries []source.Entry
	Err     error
}

// FilesScreen browses local directories and marks files across them. On
// confirm it emits every marked file, in marking order, as one batch.
type FilesScreen struct {
	scanner source.Scanner
	limits  selection.Limits
	keys    *core.KeyRegistry
	dir     string
	loading bool
	err     error
	picker  *core.Picker
	known   map[string]source.Entry
}

func NewFilesScreen(scanner source.Scanner, dir string, limits selection.Limits, keys *core.KeyRegistry) *FilesScreen {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	p := core.NewPicker("Choose Files", nil)
	p.SetMultiSelect(true)
	return &FilesScreen{
		scanner: scanner,
		limits:  limits,
		keys:    keys,
		dir:     dir,
		loading: true,
		picker:  p,
		known:   map[string]source.Entry{},
	}
}

func (s *FilesScreen) Title() string { return "Choose Files" }
func (s *FilesScreen) Scope() string { return core.ScopeFiles }
func (s *FilesScreen) Dir() string   { return s.dir }

// Load lists the current directory off the update loop.
func (s *FilesScreen) Load() tea.Cmd {
	return loadDir(s.scanner, s.dir)
}

func loadDir(scanner source.Scanner, dir string) tea.Cmd {
	return func() tea.Msg {
		entries, err := scanner.Scan(context.Background(), dir)
		return EntriesLoadedMsg{Dir: dir, Entries: entries, Err: err}
	}
}

func (s *FilesScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case EntriesLoadedMsg:
		if msg.Dir != s.dir {
			return s, nil, false
		}
		s.loading = false
		s.err = msg.Err
		if msg.Err != nil {
			s.picker.SetItems(nil)
			return s, core.ErrorCmd(msg.Err), false
		}
		s.setEntries(msg.Entries)
		return s, nil, false
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil, false
}

func (s *FilesScreen) handleKey(msg tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	keyName := msg.String()
	switch s.keys.Action(keyName, core.ScopeFiles) {
	case "toggle":
		keyName = "space"
	case "select":
		keyName = "enter"
	case "parent":
		keyName = "backspace"
	case "close":
		keyName = "esc"
	}

	res := s.picker.HandleKey(keyName)
	switch res.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		return s, s.chdir(res.Item.ID), false
	case core.PickerActionBack:
		parent := filepath.Dir(s.dir)
		if parent == s.dir {
			return s, nil, false
		}
		return s, s.chdir(parent), false
	case core.PickerActionConfirmed:
		files := make([]selection.File, 0, len(res.Marked))
		for _, it := range res.Marked {
			if e, ok := s.known[it.ID]; ok {
				files = append(files, e.File())
			}
		}
		if len(files) == 0 {
			return s, nil, false
		}
		return s, func() tea.Msg { return core.CandidatesChosenMsg{Files: files} }, true
	}
	return s, nil, false
}

func (s *FilesScreen) chdir(dir string) tea.Cmd {
	s.dir = dir
	s.loading = true
	s.err = nil
	return loadDir(s.scanner, dir)
}

func (s *FilesScreen) setEntries(entries []source.Entry) {
	items := make([]core.PickerItem, 0, len(entries)+1)
	if parent := filepath.Dir(s.dir); parent != s.dir {
		items = append(items, core.PickerItem{ID: parent, Label: "../", Section: "dirs", Search: ".."})
	}
	for _, e := range entries {
		if e.IsDir {
			items = append(items, core.PickerItem{ID: e.Path, Label: e.Name + "/", Section: "dirs", Search: e.Name})
			continue
		}
		s.known[e.Path] = e
		meta := humanize.IBytes(uint64(e.Size)) + "  " + e.MIMEType
		if !s.limits.Allows(e.MIMEType) {
			meta += "  (not accepted)"
		}
		items = append(items, core.PickerItem{
			ID:       e.Path,
			Label:    e.Name,
			Section:  "files",
			Meta:     meta,
			Search:   e.Name,
			Markable: true,
		})
	}
	s.picker.SetItems(items)
}

// Marked returns the paths marked so far, in marking order.
func (s *FilesScreen) Marked() []string {
	marked := s.picker.Marked()
	out := make([]string, 0, len(marked))
	for _, it := range marked {
		out = append(out, it.ID)
	}
	return out
}

var (
	filesDirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	filesMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	filesCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	filesErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

func (s *FilesScreen) View(width, height int) string {
	lines := []string{
		filesDirStyle.Render(core.TrimToWidth(s.dir, max(1, width))),
	}
	filter := s.picker.Query()
	switch {
	case filter == "":
		filter = "(type to filter)"
	case s.picker.Approximate():
		filter += "  (closest matches)"
	}
	lines = append(lines, "Filter: "+filter, "")

	rowsHeight := max(1, height-len(lines)-2)
	items := s.picker.Items()
	switch {
	case s.loading:
		lines = append(lines, "  Loading...")
	case s.err != nil:
		lines = append(lines, filesErrStyle.Render("  "+s.err.Error()))
	case len(items) == 0:
		lines = append(lines, "  No files")
	default:
		start := scrollStart(s.picker.Cursor(), len(items), rowsHeight)
		end := min(len(items), start+rowsHeight)
		for idx := start; idx < end; idx++ {
			lines = append(lines, s.renderRow(items[idx], idx == s.picker.Cursor(), width))
		}
	}
	footer := fmt.Sprintf("%d marked. Space mark. Enter open/confirm. Esc cancel.", len(s.picker.Marked()))
	lines = append(lines, "", footer)
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}

func (s *FilesScreen) renderRow(item core.PickerItem, current bool, width int) string {
	prefix := "  "
	if current {
		prefix = filesCursorStyle.Render("> ")
	}
	box := "    "
	if item.Markable {
		box = "[ ] "
		if s.picker.IsMarked(item.ID) {
			box = "[x] "
		}
	}
	label := item.Label
	if !item.Markable {
		label = filesDirStyle.Render(label)
	}
	row := prefix + box + label
	if item.Meta != "" {
		row += "  " + filesMetaStyle.Render(item.Meta)
	}
	return core.TrimToWidth(row, max(1, width))
}

// scrollStart keeps the cursor inside a window of size rows.
func scrollStart(cursor, total, rows int) int {
	if total <= rows || cursor < rows/2 {
		return 0
	}
	return min(cursor-rows/2, total-rows)
}
