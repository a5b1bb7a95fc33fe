package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestVStackSharesRemainingRows(t *testing.T) {
	out := VStack{
		Widgets: []Widget{Text("head"), Text("a\nb\nc\nd"), Text("x\ny\nz")},
		Heights: []int{1, 0, 0},
	}.Render(10, 6)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(lines))
	}
	got := []string{}
	for _, l := range lines {
		got = append(got, strings.TrimSpace(l))
	}
	want := []string{"head", "a", "b", "c", "x", "y"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q (all %v)", i, got[i], want[i], got)
		}
	}
}

func TestVStackSpacing(t *testing.T) {
	out := VStack{Widgets: []Widget{Text("a"), Text("b")}, Heights: []int{1, 1}, Spacing: 1}.Render(4, 3)
	if got := strings.Split(out, "\n"); len(got) != 3 || strings.TrimSpace(got[1]) != "" {
		t.Fatalf("unexpected spacing: %q", out)
	}
}

func TestSplitEven(t *testing.T) {
	got := splitEven(7, 3)
	if got[0] != 3 || got[1] != 2 || got[2] != 2 {
		t.Fatalf("splitEven(7,3) = %v", got)
	}
	if splitEven(5, 0) != nil {
		t.Fatalf("expected nil for zero parts")
	}
}

func TestPaneRendersTitleAndExactSize(t *testing.T) {
	out := Pane{Title: "Files", Content: "one\ntwo"}.Render(20, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("height = %d, want 5", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 20 {
			t.Fatalf("row %d width = %d, want 20", i, w)
		}
	}
	if !strings.Contains(ansi.Strip(lines[0]), " Files ") {
		t.Fatalf("title missing from top border: %q", ansi.Strip(lines[0]))
	}
	if !strings.Contains(ansi.Strip(lines[1]), "one") {
		t.Fatalf("content missing: %q", ansi.Strip(lines[1]))
	}
}

func TestPaneTruncatesLongTitle(t *testing.T) {
	out := Pane{Title: strings.Repeat("x", 40)}.Render(12, 3)
	top := strings.Split(out, "\n")[0]
	if w := ansi.StringWidth(top); w != 12 {
		t.Fatalf("top width = %d, want 12", w)
	}
}

func TestRenderPopupKeepsUncoveredRows(t *testing.T) {
	base := strings.Join([]string{"top row", "", "", "", "", "", "", "bottom row"}, "\n")
	out := RenderPopup(base, "hello", 30, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("height = %d, want 8", len(lines))
	}
	if !strings.HasPrefix(ansi.Strip(lines[0]), "top row") {
		t.Fatalf("first row changed: %q", ansi.Strip(lines[0]))
	}
	if !strings.HasPrefix(ansi.Strip(lines[7]), "bottom row") {
		t.Fatalf("last row changed: %q", ansi.Strip(lines[7]))
	}
	if !strings.Contains(ansi.Strip(out), "hello") {
		t.Fatalf("popup body missing")
	}
}

func TestGaugeShowsPercent(t *testing.T) {
	out := ansi.Strip(Gauge{Percent: 30, Caption: "3/10"}.Render(40, 1))
	if !strings.Contains(out, "3/10  30%") {
		t.Fatalf("caption missing: %q", out)
	}
	if w := ansi.StringWidth(out); w != 40 {
		t.Fatalf("width = %d, want 40", w)
	}
}

func TestGaugeClampsAndNarrowFallback(t *testing.T) {
	if out := ansi.Strip(Gauge{Percent: 250}.Render(30, 1)); !strings.Contains(out, "100%") {
		t.Fatalf("expected clamp to 100: %q", out)
	}
	if out := ansi.Strip(Gauge{Percent: 50}.Render(6, 1)); strings.TrimSpace(out) != "50%" {
		t.Fatalf("narrow gauge = %q", out)
	}
}

func TestButtonStates(t *testing.T) {
	for _, b := range []Button{{Label: "Upload"}, {Label: "Upload", Disabled: true}, {Label: "Upload", Focused: true}} {
		out := b.Render(20, 1)
		if !strings.Contains(ansi.Strip(out), "Upload") {
			t.Fatalf("label missing for %+v: %q", b, out)
		}
		if w := ansi.StringWidth(out); w != 20 {
			t.Fatalf("width = %d, want 20", w)
		}
	}
}
