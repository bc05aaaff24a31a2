package domain

import "time"

// AdjustForTraffic applies a deterministic congestion multiplier to a raw
// routing duration. No live traffic data is consulted: the factors model
// rush hour, short-trip overhead, and quieter weekends.
//
// The combined adjustment never reduces a duration below 90% of the base.
func AdjustForTraffic(baseMinutes, distanceKm float64, at time.Time) float64 {
	rush := 1.0
	switch hour := at.Hour(); {
	case hour >= 7 && hour <= 9, hour >= 16 && hour <= 18:
		rush = 1.30
	case hour >= 12 && hour <= 13:
		rush = 1.15
	}

	dist := 1.05
	switch {
	case distanceKm < 5:
		dist = 1.20
	case distanceKm < 20:
		dist = 1.10
	}

	weekend := 1.0
	if wd := at.Weekday(); wd == time.Saturday || wd == time.Sunday {
		weekend = 0.90
	}

	adjusted := baseMinutes * rush * dist * weekend

	if floor := baseMinutes * 0.90; adjusted < floor {
		return floor
	}
	return adjusted
}
