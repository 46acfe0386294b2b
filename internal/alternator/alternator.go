// Package alternator tracks which suffix the automatic rename mode expects
// next. It is a two-state machine: the first group of selected objects gets
// the low suffix, the next group gets high, then low again.
package alternator

import "github.com/cgpipe/bakenamer/internal/suffix"

// Phase is the alternator's state.
type Phase int

const (
	// PhaseLow means the next auto rename applies the low suffix.
	PhaseLow Phase = iota

	// PhaseHigh means the next auto rename applies the high suffix.
	PhaseHigh
)

// String returns the phase name for display.
func (p Phase) String() string {
	if p == PhaseHigh {
		return "high"
	}
	return "low"
}

// Suffix returns the baking suffix this phase applies.
func (p Phase) Suffix() string {
	if p == PhaseHigh {
		return suffix.High
	}
	return suffix.Low
}

// Alternator holds the current phase. The zero value expects low.
type Alternator struct {
	phase Phase
}

// New creates an alternator expecting the low phase.
func New() *Alternator {
	return &Alternator{phase: PhaseLow}
}

// Phase returns the current phase without changing it.
func (a *Alternator) Phase() Phase {
	return a.phase
}

// Advance toggles the phase. Callers advance only after a successful auto
// rename; a failed or empty rename leaves the phase untouched.
func (a *Alternator) Advance() {
	if a.phase == PhaseLow {
		a.phase = PhaseHigh
	} else {
		a.phase = PhaseLow
	}
}

// Reset returns the alternator to the low phase without renaming anything.
func (a *Alternator) Reset() {
	a.phase = PhaseLow
}
