package core

import (
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type PickerItem struct {
	ID      string
	Label   string
	Section string
	Meta    string
	Search  string
	// Markable items can be toggled in multi-select mode.
	Markable bool
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionToggled
	PickerActionSelected
	PickerActionConfirmed
	PickerActionBack
	PickerActionCancelled
)

var pickerSteps = map[string]int{"up": -1, "ctrl+p": -1, "down": 1, "ctrl+n": 1, "pgup": -10, "pgdown": 10}

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
	// Marked is set for PickerActionConfirmed, in the order items were marked.
	Marked []PickerItem
}

type Picker struct {
	title       string
	items       []PickerItem
	filtered    []PickerItem
	query       string
	cursor      int
	multiSelect bool
	marked      []PickerItem
	approximate bool
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

func (p *Picker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *Picker) Items() []PickerItem {
	if p == nil {
		return nil
	}
	return append([]PickerItem(nil), p.filtered...)
}

// Approximate reports whether the visible rows came from the edit distance
// fallback because nothing matched the query as a subsequence.
func (p *Picker) Approximate() bool {
	return p != nil && p.approximate
}

// SetItems replaces the rows and clears the query. Marks survive so a
// selection can span several listings.
func (p *Picker) SetItems(items []PickerItem) {
	if p == nil {
		return
	}
	p.items = append([]PickerItem(nil), items...)
	p.query = ""
	p.cursor = 0
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.rebuildFiltered()
}

func (p *Picker) SetMultiSelect(on bool) {
	if p == nil {
		return
	}
	p.multiSelect = on
}

func (p *Picker) IsMarked(id string) bool {
	if p == nil {
		return false
	}
	for _, it := range p.marked {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (p *Picker) Marked() []PickerItem {
	if p == nil {
		return nil
	}
	return append([]PickerItem(nil), p.marked...)
}

// Toggle flips the mark on the row under the cursor.
func (p *Picker) Toggle() bool {
	item, ok := p.CurrentItem()
	if !ok || !item.Markable {
		return false
	}
	if p.IsMarked(item.ID) {
		p.marked = slices.DeleteFunc(p.marked, func(it PickerItem) bool { return it.ID == item.ID })
		return true
	}
	p.marked = append(p.marked, item)
	return true
}

// Move shifts the cursor by delta, clamped to the visible rows. It reports
// whether the cursor changed.
func (p *Picker) Move(delta int) bool {
	if p == nil || len(p.filtered) == 0 {
		return false
	}
	next := min(max(p.cursor+delta, 0), len(p.filtered)-1)
	moved := next != p.cursor
	p.cursor = next
	return moved
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p == nil || len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	return p.filtered[min(p.cursor, len(p.filtered)-1)], true
}

func (p *Picker) HandleKey(keyName string) PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	switch keyName {
	case "up", "ctrl+p", "down", "ctrl+n", "pgup", "pgdown":
		if p.Move(pickerSteps[keyName]) {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "space", " ":
		if !p.multiSelect {
			if p.query != "" {
				p.SetQuery(p.query + " ")
			}
			return PickerResult{Action: PickerActionNone}
		}
		item, _ := p.CurrentItem()
		if !p.Toggle() {
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionToggled, Item: item}
	case "enter":
		item, ok := p.CurrentItem()
		if p.multiSelect && (!ok || item.Markable) {
			if len(p.marked) > 0 {
				return PickerResult{Action: PickerActionConfirmed, Item: item, Marked: p.Marked()}
			}
			if ok {
				return PickerResult{Action: PickerActionConfirmed, Item: item, Marked: []PickerItem{item}}
			}
		}
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionSelected, Item: item}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionBack}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return PickerResult{Action: PickerActionNone}
	}
}

func (p *Picker) SectionOrder() []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]bool, len(p.items))
	out := make([]string, 0, len(p.items))
	for _, item := range p.items {
		if seen[item.Section] {
			continue
		}
		seen[item.Section] = true
		out = append(out, item.Section)
	}
	return out
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	if p == nil {
		return
	}
	q := strings.TrimSpace(p.query)
	bySection := make(map[string][]scoredPickerItem)
	matches := 0
	for idx, item := range p.items {
		matched, score := fuzzyMatchScore(searchText(item), q)
		if !matched {
			continue
		}
		matches++
		bySection[item.Section] = append(bySection[item.Section], scoredPickerItem{item: item, score: score, index: idx})
	}
	p.approximate = false
	if matches == 0 && q != "" {
		bySection = p.nearMisses(q)
		p.approximate = len(bySection) > 0
	}

	out := make([]PickerItem, 0, len(p.items))
	for _, section := range p.SectionOrder() {
		scored := bySection[section]
		if len(scored) == 0 {
			continue
		}
		sort.Slice(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			return scored[i].index < scored[j].index
		})
		for _, row := range scored {
			out = append(out, row.item)
		}
	}
	p.filtered = out

	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// nearMisses keeps labels within a small edit distance of the query, so a
// typo such as "invioce" still finds "invoice.pdf".
func (p *Picker) nearMisses(q string) map[string][]scoredPickerItem {
	q = strings.ToLower(q)
	limit := max(1, len(q)/3)
	out := make(map[string][]scoredPickerItem)
	for idx, item := range p.items {
		d := labelDistance(strings.ToLower(searchText(item)), q)
		if d > limit {
			continue
		}
		out[item.Section] = append(out[item.Section], scoredPickerItem{item: item, score: -d, index: idx})
	}
	return out
}

func labelDistance(label, q string) int {
	best := levenshtein.ComputeDistance(label, q)
	for _, word := range strings.FieldsFunc(label, isSeparator) {
		best = min(best, levenshtein.ComputeDistance(word, q))
	}
	return best
}

func searchText(item PickerItem) string {
	if s := strings.TrimSpace(item.Search); s != "" {
		return s
	}
	return item.Label
}

// fuzzyMatchScore matches query as a case-insensitive subsequence of label.
// Runs of adjacent characters, a match at the very start and matches right
// after a separator such as "." or "_" all score higher.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	hay := []rune(strings.ToLower(label))
	needle := []rune(strings.ToLower(query))

	score, pos, prev := 0, 0, -2
	for _, want := range needle {
		for pos < len(hay) && hay[pos] != want {
			pos++
		}
		if pos == len(hay) {
			return false, 0
		}
		score++
		switch {
		case pos == 0:
			score += 10
		case pos == prev+1:
			score += 3
		case isSeparator(hay[pos-1]):
			score += 5
		}
		prev = pos
		pos++
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '.', '_', '-', '/':
		return true
	}
	return false
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
