package scenario

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/nvandessel/cruisecheck/internal/constants"
	"github.com/nvandessel/cruisecheck/internal/cruise"
	"github.com/nvandessel/cruisecheck/internal/signal"
)

// Banner is logged when a run starts.
const Banner = "========== Cruise-Control Test =========="

// Recorder receives step verdicts.
// logging.EventLog and metrics.Collector both satisfy it.
type Recorder interface {
	StepVerdict(step int, passed bool)
}

// Options configures a Runner. The zero value is usable.
type Options struct {
	// Sleep replaces time.Sleep for settling pauses.
	Sleep cruise.Sleeper

	// Rand draws the activation target speed. Nil uses a time-seeded source.
	Rand *rand.Rand

	// Logger receives banners and verdicts. Nil discards output.
	Logger *slog.Logger

	// Recorders are notified of each step verdict.
	Recorders []Recorder

	// PauseObservers are notified of each settling pause.
	PauseObservers []cruise.PauseObserver

	// AccPedalPercent is the accelerator position held during step 2.
	// Zero means constants.DefaultAccPedalPercent.
	AccPedalPercent int

	// TargetSpeedMax bounds the stored set speed in the step 2 check.
	// Zero means constants.DefaultTargetSpeedMax.
	TargetSpeedMax int
}

// Runner drives a signal store through the two-step scenario.
type Runner struct {
	store     signal.Store
	actuator  *cruise.Actuator
	verifier  *cruise.Verifier
	rng       *rand.Rand
	logger    *slog.Logger
	recorders []Recorder
	pedal     int
	speedMax  int
	state     State
	last      Result
}

// NewRunner creates a Runner over store. The store is used as-is; it is
// not reseeded.
func NewRunner(store signal.Store, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	pedal := opts.AccPedalPercent
	if pedal == 0 {
		pedal = constants.DefaultAccPedalPercent
	}

	speedMax := opts.TargetSpeedMax
	if speedMax == 0 {
		speedMax = constants.DefaultTargetSpeedMax
	}

	return &Runner{
		store:     store,
		actuator:  cruise.NewActuator(store, opts.Sleep, logger, opts.PauseObservers...),
		verifier:  cruise.NewVerifier(store),
		rng:       rng,
		logger:    logger,
		recorders: opts.Recorders,
		pedal:     pedal,
		speedMax:  speedMax,
		state:     StateStart,
	}
}

// State returns the runner's current state.
func (r *Runner) State() State {
	return r.state
}

// Run executes the scenario once and returns its result. Calling Run on a
// runner that already finished returns the earlier result without touching
// the store.
func (r *Runner) Run() Result {
	if r.state.Terminal() {
		return r.last
	}

	r.logger.Info(Banner)

	// Step 1: power up and check the idle baseline.
	result := Result{Step1Passed: r.runBaseline()}
	r.state = StateStep1Checked
	r.record(1, result.Step1Passed)

	if !result.Step1Passed {
		r.logger.Error("Step 1 FAILED: unexpected cruise-control status at startup")
		r.state = StateStep1Failed
		result.State = r.state
		r.last = result
		return result
	}
	r.logger.Info("Step 1 PASSED: cruise control correctly inactive at startup")

	// Step 2: reach the activation window and press SET.
	result.Step2Ran = true
	result.TargetSpeed, result.Step2Passed = r.runActivation()
	r.state = StateStep2Checked
	r.record(2, result.Step2Passed)

	if result.Step2Passed {
		r.logger.Info("Step 2 PASSED: cruise control activated as expected")
	} else {
		r.logger.Error("Step 2 FAILED: cruise control did not activate correctly",
			"target_speed", result.TargetSpeed, "set_speed_max", r.speedMax)
	}

	result.State = r.state
	r.last = result
	return result
}

func (r *Runner) runBaseline() bool {
	r.logger.Info("STEP 1: power-up and baseline")
	r.actuator.PowerOn()
	r.actuator.EngineStart()
	return r.verifier.CruiseControlInactive()
}

func (r *Runner) runActivation() (int, bool) {
	r.logger.Info("STEP 2: activate cruise control")

	target := r.drawTargetSpeed()
	r.logger.Info("target speed selected", "kmh", target)
	r.store.Write(signal.VehicleSpeed, target)

	r.actuator.PressAccPedal(r.pedal)
	r.actuator.IncreaseGear()
	r.actuator.PressCCSetButton()

	return target, r.verifier.CruiseControlActive(r.speedMax)
}

// drawTargetSpeed picks uniformly from the inclusive activation window.
func (r *Runner) drawTargetSpeed() int {
	span := constants.ActivationSpeedMax - constants.ActivationSpeedMin + 1
	return constants.ActivationSpeedMin + r.rng.IntN(span)
}

func (r *Runner) record(step int, passed bool) {
	for _, rec := range r.recorders {
		rec.StepVerdict(step, passed)
	}
}
