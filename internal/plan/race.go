package plan

// Prediction is a forecast finish time for a standard race distance.
type Prediction struct {
	Race     string  `json:"race"`
	Distance float64 `json:"distance_m"`
	Seconds  float64 `json:"seconds"`
}

var raceDistances = []struct {
	name   string
	meters float64
}{
	{"1500m", 1500},
	{"1 Mile", 1609.34},
	{"3K", 3000},
	{"5K", 5000},
	{"10K", 10000},
	{"Half Marathon", 21097.5},
	{"Marathon", 42195},
}

// PredictRaces inverts the linear distance-duration model,
//
//	t = d/threshold - reserve/threshold²
//
// for each standard distance. Distances the model cannot cover at the
// given parameters (non-positive predicted time, e.g. a race shorter than
// the reserve itself) are omitted. threshold must be > 0.
func PredictRaces(threshold, reserve float64) []Prediction {
	predictions := make([]Prediction, 0, len(raceDistances))
	for _, r := range raceDistances {
		seconds := r.meters/threshold - reserve/(threshold*threshold)
		if seconds <= 0 {
			continue
		}
		predictions = append(predictions, Prediction{
			Race:     r.name,
			Distance: r.meters,
			Seconds:  seconds,
		})
	}
	return predictions
}
