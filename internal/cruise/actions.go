// Package cruise provides the high-level driver actions and the
// cruise-control verification predicates that a scenario composes.
//
// Actions write a single signal and then block for a fixed settling delay.
// Predicates only read; they never mutate the store.
package cruise

import (
	"log/slog"
	"time"

	"github.com/nvandessel/cruisecheck/internal/constants"
	"github.com/nvandessel/cruisecheck/internal/signal"
)

// Sleeper blocks for the given duration. time.Sleep is the production
// implementation; tests substitute a recorder.
type Sleeper func(time.Duration)

// PauseObserver is notified before each settling pause.
type PauseObserver interface {
	Pause(d time.Duration)
}

// Actuator performs driver actions against a signal store.
type Actuator struct {
	store     signal.Store
	sleep     Sleeper
	logger    *slog.Logger
	observers []PauseObserver
}

// NewActuator creates an Actuator. A nil sleep uses time.Sleep and a nil
// logger discards output.
func NewActuator(store signal.Store, sleep Sleeper, logger *slog.Logger, observers ...PauseObserver) *Actuator {
	if sleep == nil {
		sleep = time.Sleep
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Actuator{
		store:     store,
		sleep:     sleep,
		logger:    logger,
		observers: observers,
	}
}

// PowerOn switches the supply on.
func (a *Actuator) PowerOn() {
	a.activate(signal.PowerSupply, constants.SignalOn, constants.DelayShort)
}

// EngineStart cranks the engine.
func (a *Actuator) EngineStart() {
	a.activate(signal.EngineStart, constants.SignalOn, constants.DelayShort)
}

// IncreaseGear shifts up one gear.
func (a *Actuator) IncreaseGear() {
	a.activate(signal.GearIncreaseOne, constants.SignalOn, constants.DelayShort)
}

// PressAccPedal holds the accelerator at percent. No range check is made.
func (a *Actuator) PressAccPedal(percent int) {
	a.activate(signal.AccPedal, percent, constants.DelayMedium)
}

// PressCCSetButton presses the cruise-control SET button.
func (a *Actuator) PressCCSetButton() {
	a.activate(signal.CruiseControlSetButton, constants.SignalOn, constants.DelayShort)
}

func (a *Actuator) activate(name string, value int, delay time.Duration) {
	a.store.Write(name, value)
	a.Pause(delay)
}

// Pause blocks for d. It always runs to completion.
func (a *Actuator) Pause(d time.Duration) {
	a.logger.Debug("sleep", "duration", d)
	for _, obs := range a.observers {
		obs.Pause(d)
	}
	a.sleep(d)
}
