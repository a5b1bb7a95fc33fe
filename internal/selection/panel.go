package selection

import "slices"

// Panel owns the selection for the lifetime of one widget. It stores only
// the latest State; all derived values are computed on demand.
type Panel struct {
	limits Limits
	state  State
}

func NewPanel(l Limits) *Panel {
	return &Panel{limits: l}
}

func (p *Panel) Limits() Limits { return p.limits }

// Snapshot returns the current state. Callers must treat Files as read-only.
func (p *Panel) Snapshot() State { return p.state }

func (p *Panel) Files() []File { return slices.Clone(p.state.Files) }

func (p *Panel) Len() int { return len(p.state.Files) }

// Err returns the message of the most recent rejection, or "" when there is
// none.
func (p *Panel) Err() string {
	if p.state.Err == nil {
		return ""
	}
	return p.state.Err.Message
}

func (p *Panel) Submit(candidates []File) error {
	next, err := Submit(p.state, candidates, p.limits)
	p.state = next
	return err
}

func (p *Panel) RemoveAt(i int) bool {
	next, ok := RemoveAt(p.state, i)
	p.state = next
	return ok
}

func (p *Panel) CapacityRatio() float64 { return CapacityRatio(p.state, p.limits) }

func (p *Panel) CanSubmit() bool { return CanSubmit(p.state) }

// Finalize returns a copy of the validated selection for handoff.
func (p *Panel) Finalize() ([]File, error) {
	if !p.CanSubmit() {
		return nil, ErrNothingToSubmit
	}
	return p.Files(), nil
}
