package signal

// Signals observed by the cruise-control verification predicates.
const (
	CruiseControlActive        = "CruiseControlActive"
	CruiseControlEnabledSwitch = "CruiseControlEnabledSwitch"
	CruiseControlStates        = "CruiseControlStates"
	CruiseControlSetSpeed      = "CruiseControlSetSpeed"
	VehicleSpeed               = "VehicleSpeed"
)

// Signals driven by the high-level actions. None of these are seeded, so
// they read as absent until an action writes them.
const (
	PowerSupply            = "PowerSupply"
	EngineStart            = "EngineStart"
	GearIncreaseOne        = "GearIncreaseOne"
	AccPedal               = "AccPedal"
	CruiseControlSetButton = "CruiseControlSetButton"
)

// Defaults returns the seed set every store starts from: the four
// cruise-control status signals plus VehicleSpeed, all zero.
// A fresh map is returned on each call.
func Defaults() map[string]int {
	return map[string]int{
		CruiseControlActive:        0,
		CruiseControlEnabledSwitch: 0,
		CruiseControlStates:        0,
		CruiseControlSetSpeed:      0,
		VehicleSpeed:               0,
	}
}
