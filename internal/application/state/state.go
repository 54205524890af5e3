package state

import "fmt"

// Phase represents where the game loop is in its lifecycle
type Phase int

const (
	PhaseConstructing Phase = iota
	PhaseInitializing
	PhaseLoading
	PhaseRunning
	PhaseClosed
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseConstructing:
		return "Constructing"
	case PhaseInitializing:
		return "Initializing"
	case PhaseLoading:
		return "Loading"
	case PhaseRunning:
		return "Running"
	case PhaseClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// CanAdvance reports whether the loop may move from p to next. Phases only
// move forward one step at a time, except that any phase may close.
func (p Phase) CanAdvance(next Phase) bool {
	if next == PhaseClosed {
		return p != PhaseClosed
	}
	return next == p+1
}

// Advance returns next if the transition is allowed.
func (p Phase) Advance(next Phase) (Phase, error) {
	if !p.CanAdvance(next) {
		return p, fmt.Errorf("invalid phase transition %s -> %s", p, next)
	}
	return next, nil
}

// AcceptsFrames reports whether tick and draw notifications are processed.
func (p Phase) AcceptsFrames() bool {
	return p == PhaseRunning
}
