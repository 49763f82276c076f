// Package constants provides named constants used throughout the cruisecheck codebase.
// This centralizes magic numbers for better maintainability and documentation.
package constants

import "time"

// Settling delays applied after each high-level action.
const (
	// DelayShort is the pause after a switch-style action (power, engine,
	// gear, set button).
	DelayShort = 2 * time.Second

	// DelayMedium is the pause after pressing the accelerator pedal, giving
	// the simulated vehicle time to stabilise its speed.
	DelayMedium = 4 * time.Second
)

// Cruise-control state and activation window constants.
const (
	// StateActive is the CruiseControlStates code reported while cruise
	// control is engaged.
	StateActive = 6

	// ActivationSpeedMin is the lowest vehicle speed (km/h) at which cruise
	// control accepts a SET command.
	ActivationSpeedMin = 30

	// ActivationSpeedMax is the highest vehicle speed (km/h) of the
	// activation window. Inclusive.
	ActivationSpeedMax = 35

	// DefaultTargetSpeedMax is the upper bound for the stored set speed when
	// verifying activation.
	DefaultTargetSpeedMax = ActivationSpeedMax

	// DefaultAccPedalPercent is the accelerator position held while bringing
	// the vehicle into the activation window.
	DefaultAccPedalPercent = 40
)

// Signal values written by switch-style actions.
const (
	// SignalOn is the "activate" value for power, engine, gear and button signals.
	SignalOn = 1
)
