package scenario

// State is a position in the scenario state machine.
type State string

const (
	StateStart        State = "start"         // Nothing has run yet
	StateStep1Checked State = "step1-checked" // Baseline predicate evaluated
	StateStep1Failed  State = "step1-failed"  // Baseline failed; terminal
	StateStep2Checked State = "step2-checked" // Activation predicate evaluated; terminal
)

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool {
	return s == StateStep1Failed || s == StateStep2Checked
}

// Result captures the outcome of a single run.
type Result struct {
	State State

	// Step1Passed is the baseline verdict.
	Step1Passed bool

	// Step2Ran is false when the run stopped after a failed baseline.
	Step2Ran bool

	// Step2Passed is the activation verdict. Only meaningful when Step2Ran.
	Step2Passed bool

	// TargetSpeed is the VehicleSpeed written before pressing SET, or 0
	// when step 2 did not run.
	TargetSpeed int
}

// Passed reports whether both steps ran and passed.
func (r Result) Passed() bool {
	return r.Step1Passed && r.Step2Ran && r.Step2Passed
}
