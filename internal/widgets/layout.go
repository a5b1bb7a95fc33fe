package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Heights gives each widget a fixed
// row count; a zero entry (or a missing one) shares whatever rows are left.
type VStack struct {
	Widgets []Widget
	Heights []int
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := v.resolveHeights(height)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		if len(lines) > 0 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
		part := w.Render(width, heights[i])
		lines = append(lines, strings.Split(part, "\n")...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (v VStack) resolveHeights(height int) []int {
	n := len(v.Widgets)
	out := make([]int, n)
	spacingTotal := max(0, v.Spacing*(n-1))
	remaining := height - spacingTotal
	flexible := 0
	for i := range out {
		h := 0
		if i < len(v.Heights) {
			h = v.Heights[i]
		}
		if h <= 0 {
			flexible++
			continue
		}
		h = min(h, max(0, remaining))
		out[i] = h
		remaining -= h
	}
	if flexible == 0 || remaining <= 0 {
		return out
	}
	shares := splitEven(remaining, flexible)
	next := 0
	for i := range out {
		fixed := i < len(v.Heights) && v.Heights[i] > 0
		if fixed {
			continue
		}
		out[i] = shares[next]
		next++
	}
	return out
}

func splitEven(total, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = total / n
	}
	for i := 0; i < total%n; i++ {
		out[i]++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
