package report

import (
	"fmt"
	"math"
)

// Distance units for pace display.
type Unit string

const (
	UnitMeters     Unit = "meters"
	UnitKilometers Unit = "kilometers"
	UnitMiles      Unit = "miles"
)

const metersPerMile = 1609.34

// FormatPace renders a speed in m/s as a "m:ss" pace per kilometer or per
// mile. Non-positive speeds render as "-".
func FormatPace(speed float64, unit Unit) string {
	if speed <= 0 {
		return "-"
	}
	perUnit := 1000.0
	if unit == UnitMiles {
		perUnit = metersPerMile
	}
	paceSeconds := perUnit / speed
	minutes := int(paceSeconds) / 60
	seconds := int(paceSeconds) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatClock renders a second count as "h:mm:ss", or "m:ss" under an
// hour.
func FormatClock(seconds float64) string {
	total := int(math.Round(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ToMeters converts a distance in the given unit to meters.
func ToMeters(distance float64, unit Unit) float64 {
	switch unit {
	case UnitKilometers:
		return distance * 1000
	case UnitMiles:
		return distance * metersPerMile
	}
	return distance
}

// FromMeters converts a distance in meters to the given unit.
func FromMeters(distance float64, unit Unit) float64 {
	switch unit {
	case UnitKilometers:
		return distance / 1000
	case UnitMiles:
		return distance / metersPerMile
	}
	return distance
}
