// Package selection holds the file selection state and the transitions that
// validate and mutate it. Everything here is pure: transitions take the
// current State and return the next one, so the UI layer only re-renders.
package selection

import "slices"

// File is one chosen file. Path is an opaque reference for whoever consumes
// the final list and plays no part in validation.
type File struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MIMEType string `json:"mime_type"`
	Path     string `json:"path,omitempty"`
}

// State is an immutable snapshot: the ordered selection plus the error from
// the most recent rejected attempt, if any.
type State struct {
	Files []File
	Err   *ValidationError
}

func (s State) Len() int { return len(s.Files) }

// Submit validates candidates against l and either appends all of them or
// none. Checks run count, size, then type, and stop at the first failure.
// On rejection the returned State keeps the previous files and carries the
// error, which is also returned. An empty batch changes nothing.
func Submit(s State, candidates []File, l Limits) (State, error) {
	if len(candidates) == 0 {
		return s, nil
	}
	if verr := check(len(s.Files), candidates, l); verr != nil {
		return State{Files: s.Files, Err: verr}, verr
	}
	return State{Files: slices.Concat(s.Files, candidates)}, nil
}

func check(current int, candidates []File, l Limits) *ValidationError {
	if current+len(candidates) > l.MaxFiles {
		return countExceeded(l)
	}
	var oversized []string
	for _, f := range candidates {
		if f.Size > l.MaxFileSize {
			oversized = append(oversized, f.Name)
		}
	}
	if len(oversized) > 0 {
		return sizeExceeded(l, oversized)
	}
	var disallowed []string
	for _, f := range candidates {
		if !l.Allows(f.MIMEType) {
			disallowed = append(disallowed, f.Name)
		}
	}
	if len(disallowed) > 0 {
		return typeNotAllowed(l, disallowed)
	}
	return nil
}

// RemoveAt drops the entry at index i; later entries shift down and the
// error is left as it was. An out-of-range index returns s unchanged and
// false.
func RemoveAt(s State, i int) (State, bool) {
	if i < 0 || i >= len(s.Files) {
		return s, false
	}
	return State{Files: slices.Delete(slices.Clone(s.Files), i, i+1), Err: s.Err}, true
}

// CapacityRatio is the share of MaxFiles in use, as a percentage in [0, 100].
func CapacityRatio(s State, l Limits) float64 {
	if l.MaxFiles <= 0 {
		return 0
	}
	ratio := float64(len(s.Files)) / float64(l.MaxFiles) * 100
	return min(max(ratio, 0), 100)
}

func CanSubmit(s State) bool {
	return len(s.Files) > 0
}
