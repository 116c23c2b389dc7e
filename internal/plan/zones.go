// Package plan derives training guidance from an estimated parameter
// pair: intensity zone tables and race-time predictions. Everything here
// is simple arithmetic over the threshold and reserve.
package plan

// Zone is one training band expressed as absolute intensities.
type Zone struct {
	Name string  `json:"name"`
	Low  float64 `json:"low"`  // m/s or watts
	High float64 `json:"high"` // m/s or watts
}

// zone bands as fractions of threshold, per the running literature.
var zoneBands = []struct {
	name      string
	low, high float64
}{
	{"Recovery", 0.60, 0.70},
	{"Easy/Aerobic", 0.70, 0.80},
	{"Moderate", 0.80, 0.87},
	{"Threshold", 0.87, 0.93},
	{"Critical", 0.93, 1.00},
	{"Interval", 1.00, 1.10},
	{"Repetition", 1.10, 1.20},
}

// Zones returns the seven training bands for a threshold, in order from
// easiest to hardest.
func Zones(threshold float64) []Zone {
	zones := make([]Zone, len(zoneBands))
	for i, b := range zoneBands {
		zones[i] = Zone{Name: b.name, Low: b.low * threshold, High: b.high * threshold}
	}
	return zones
}
