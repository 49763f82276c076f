package cruise

import (
	"github.com/nvandessel/cruisecheck/internal/constants"
	"github.com/nvandessel/cruisecheck/internal/signal"
)

// Verifier evaluates cruise-control postconditions against a store.
//
// An absent signal never satisfies an expectation: comparing it for
// equality or against an upper bound yields false.
type Verifier struct {
	store signal.Store
}

// NewVerifier creates a Verifier reading from store.
func NewVerifier(store signal.Store) *Verifier {
	return &Verifier{store: store}
}

// CruiseControlInactive reports whether the idle baseline holds:
// CruiseControlActive, CruiseControlEnabledSwitch, CruiseControlStates and
// CruiseControlSetSpeed are all 0.
func (v *Verifier) CruiseControlInactive() bool {
	return v.equals(signal.CruiseControlActive, 0) &&
		v.equals(signal.CruiseControlEnabledSwitch, 0) &&
		v.equals(signal.CruiseControlStates, 0) &&
		v.equals(signal.CruiseControlSetSpeed, 0)
}

// CruiseControlActive reports whether cruise control is engaged with a
// stored set speed no higher than targetSpeedMax. The result does not say
// which condition failed.
func (v *Verifier) CruiseControlActive(targetSpeedMax int) bool {
	return v.equals(signal.CruiseControlActive, 1) &&
		v.equals(signal.CruiseControlEnabledSwitch, 1) &&
		v.equals(signal.CruiseControlStates, constants.StateActive) &&
		v.atMost(signal.CruiseControlSetSpeed, targetSpeedMax)
}

func (v *Verifier) equals(name string, want int) bool {
	got, ok := v.store.Read(name)
	return ok && got == want
}

func (v *Verifier) atMost(name string, max int) bool {
	got, ok := v.store.Read(name)
	return ok && got <= max
}
