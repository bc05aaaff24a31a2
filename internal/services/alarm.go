package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"wakeup-route-service/internal/domain"
)

const (
	// MinGettingReadyMinutes and MaxGettingReadyMinutes bound the accepted
	// preparation time.
	MinGettingReadyMinutes = 1
	MaxGettingReadyMinutes = 240

	baseMarginMinutes = 15.0
	maxExtraMargin    = 30.0

	weatherDelayMinutes = 10.0
)

// badWeather lists OpenWeatherMap headline conditions that warrant leaving
// earlier.
var badWeather = map[string]struct{}{
	"rain":         {},
	"drizzle":      {},
	"thunderstorm": {},
	"storm":        {},
	"snow":         {},
}

// DelayForCondition returns the extra lead time (minutes) for a weather
// condition, zero for anything that doesn't slow a commute down.
func DelayForCondition(condition string) float64 {
	if _, ok := badWeather[strings.ToLower(condition)]; ok {
		return weatherDelayMinutes
	}
	return 0
}

// PlanAlarm derives a wake-up time from the desired arrival time, getting
// ready minutes, and the travel estimate.
//
// The safety margin scales with the ETA (a quarter of it, capped at 30
// minutes) on top of a fixed 15. If the computed wake-up time already lies
// in the past relative to now, the whole plan shifts to the next day.
func PlanAlarm(
	arrival string,
	gettingReadyMinutes int,
	etaMinutes float64,
	weatherDelay float64,
	now time.Time,
) (domain.AlarmPlan, error) {
	arrivalClock, err := time.Parse("15:04", strings.TrimSpace(arrival))
	if err != nil {
		return domain.AlarmPlan{}, fmt.Errorf("parse arrival time %q: %w", arrival, err)
	}

	if gettingReadyMinutes < MinGettingReadyMinutes || gettingReadyMinutes > MaxGettingReadyMinutes {
		return domain.AlarmPlan{}, fmt.Errorf(
			"getting ready minutes %d outside %d-%d",
			gettingReadyMinutes, MinGettingReadyMinutes, MaxGettingReadyMinutes,
		)
	}

	margin := baseMarginMinutes + math.Min(maxExtraMargin, etaMinutes*0.25)
	total := etaMinutes + float64(gettingReadyMinutes) + margin
	lead := total + weatherDelay

	arriveAt := time.Date(
		now.Year(), now.Month(), now.Day(),
		arrivalClock.Hour(), arrivalClock.Minute(), 0, 0,
		now.Location(),
	)

	alarmAt := arriveAt.Add(-time.Duration(lead * float64(time.Minute)))

	// Wake-up already behind us: the alarm is meant for tomorrow.
	if alarmAt.Before(now) {
		alarmAt = alarmAt.Add(24 * time.Hour)
		arriveAt = arriveAt.Add(24 * time.Hour)
	}

	return domain.AlarmPlan{
		ArriveAt:            arriveAt,
		AlarmAt:             alarmAt,
		GettingReadyMinutes: gettingReadyMinutes,
		ETAMinutes:          etaMinutes,
		MarginMinutes:       margin,
		WeatherDelayMinutes: weatherDelay,
		TotalTravelMinutes:  total,
	}, nil
}
