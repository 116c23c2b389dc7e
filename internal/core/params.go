// Package core defines the fundamental value types shared by the
// pacelab estimation and simulation packages.
package core

// Sport selects the unit system and the default recovery time constant.
// Running works in m/s and meters; cycling in watts and joules. The math
// is identical, only labeling and tau defaults differ.
type Sport string

const (
	SportRunning Sport = "running"
	SportCycling Sport = "cycling"
)

// Recovery time constants in seconds, calibrated per sport in the
// physiological literature. Callers may override per run.
const (
	TauRunning = 300.0
	TauCycling = 546.0
)

// DefaultTau returns the sport's reconstitution time constant in seconds.
// Unknown sports fall back to the running constant.
func (s Sport) DefaultTau() float64 {
	if s == SportCycling {
		return TauCycling
	}
	return TauRunning
}

// IntensityUnit returns the display unit for intensity samples.
func (s Sport) IntensityUnit() string {
	if s == SportCycling {
		return "W"
	}
	return "m/s"
}

// CapacityUnit returns the display unit for the reserve capacity.
func (s Sport) CapacityUnit() string {
	if s == SportCycling {
		return "J"
	}
	return "m"
}

// Parameters is the two-parameter critical intensity model: the sustainable
// threshold (CS or CP) and the finite above-threshold reserve (D' or W').
type Parameters struct {
	Threshold float64 `json:"threshold"` // m/s or watts, must be > 0 for simulation
	Reserve   float64 `json:"reserve"`   // meters or joules, >= 0
}

// Trial is one completed test effort: a duration and either the distance
// covered (time-trial protocol) or the constant intensity held
// (time-to-exhaustion protocol).
type Trial struct {
	Duration  float64 // seconds
	Distance  float64 // meters, time-trial protocol
	Intensity float64 // m/s or watts, time-to-exhaustion protocol
}
