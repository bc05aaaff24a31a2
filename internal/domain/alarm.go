package domain

import "time"

// AlarmPlan is the outcome of one wake-up calculation. Computed once per
// request and never mutated afterwards.
type AlarmPlan struct {
	ArriveAt            time.Time
	AlarmAt             time.Time
	GettingReadyMinutes int
	ETAMinutes          float64
	MarginMinutes       float64
	WeatherDelayMinutes float64
	TotalTravelMinutes  float64
}
