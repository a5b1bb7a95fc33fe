package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jask/filepanel/internal/widgets"
)

const maxPanelWidth = 72

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c2e7"))
)

type view struct {
	p *Panel
}

func (v view) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	w := min(width, maxPanelWidth)
	inner := max(1, w-4)
	body := v.content(inner, max(1, height-2))
	pane := widgets.Pane{Title: v.p.title, Content: body, Focused: true}.Render(w, height)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, pane)
}

// content lays out, top to bottom: error banner, trigger, file list, gauge,
// submit button. Only the list grows.
func (v view) content(width, height int) string {
	sel := v.p.sel

	var top []string
	if msg := sel.Err(); msg != "" {
		top = append(top, errorStyle.Render(msg), "")
	}
	top = append(top, widgets.Button{Label: "Choose Files"}.Render(width, 1), "")

	n := sel.Len()
	bottom := []string{
		"",
		widgets.Gauge{Percent: sel.CapacityRatio(), Caption: fmt.Sprintf("%d/%d", n, sel.Limits().MaxFiles)}.Render(width, 1),
		"",
		widgets.Button{Label: "Upload", Disabled: !sel.CanSubmit(), Focused: sel.CanSubmit()}.Render(width, 1),
	}

	listHeight := max(0, height-len(top)-len(bottom))
	stack := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(strings.Join(top, "\n")),
			widgets.Text(v.list(width, listHeight)),
			widgets.Text(strings.Join(bottom, "\n")),
		},
		Heights: []int{len(top), 0, len(bottom)},
	}
	return stack.Render(width, height)
}

func (v view) list(width, height int) string {
	files := v.p.sel.Files()
	if len(files) == 0 || height <= 0 {
		return ""
	}
	lines := []string{headStyle.Render(fmt.Sprintf("Selected files: %d", len(files)))}
	rows := max(1, height-1)
	start := 0
	if v.p.cursor >= rows {
		start = v.p.cursor - rows + 1
	}
	for i := start; i < len(files) && i < start+rows; i++ {
		f := files[i]
		prefix := "  "
		if i == v.p.cursor {
			prefix = cursorStyle.Render("> ")
		}
		row := prefix + f.Name + "  " + metaStyle.Render(humanize.IBytes(uint64(max(f.Size, 0)))+"  "+f.MIMEType)
		if i == v.p.cursor {
			row += "  " + hintStyle.Render("[d] remove")
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}
