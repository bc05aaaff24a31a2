package handlers

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wakeup-route-service/internal/api/dto"
	"wakeup-route-service/internal/ports"
	"wakeup-route-service/internal/services"
)

// CalculateHandler derives a wake-up alarm from the submitted arrival time,
// preparation minutes, and a travel estimate between two place names.
//
// The outbound chain is sequential on purpose: geocode start, geocode end,
// then route providers in priority order. Trying cached/cheap providers
// first avoids external calls; parallel fan-out would defeat that.
type CalculateHandler struct {
	Geocoder ports.Geocoder
	Routes   ports.RouteEstimator
	Weather  ports.WeatherProvider // optional, may be nil

	Now func() time.Time
}

func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeUserError(w, r, "Invalid form data.")
		return
	}

	arrival := strings.TrimSpace(r.PostFormValue("arrival_time"))
	readyRaw := strings.TrimSpace(r.PostFormValue("getting_ready"))
	startPlace := strings.TrimSpace(r.PostFormValue("start_place"))
	endPlace := strings.TrimSpace(r.PostFormValue("end_place"))
	currentAlarm := strings.TrimSpace(r.PostFormValue("current_alarm"))

	if arrival == "" || readyRaw == "" || startPlace == "" || endPlace == "" {
		writeUserError(w, r, "Please fill in arrival time, getting ready time and both locations.")
		return
	}

	if _, err := time.Parse("15:04", arrival); err != nil {
		writeUserError(w, r, "Arrival time must be in HH:MM (24h) format.")
		return
	}

	ready, err := strconv.Atoi(readyRaw)
	if err != nil || ready < services.MinGettingReadyMinutes || ready > services.MaxGettingReadyMinutes {
		writeUserError(w, r, fmt.Sprintf(
			"Getting ready time must be a whole number between %d and %d minutes.",
			services.MinGettingReadyMinutes, services.MaxGettingReadyMinutes,
		))
		return
	}

	ctx := r.Context()

	start, ok := h.Geocoder.Resolve(ctx, startPlace)
	if !ok {
		writeUserError(w, r, fmt.Sprintf("Could not find location %q.", startPlace))
		return
	}

	end, ok := h.Geocoder.Resolve(ctx, endPlace)
	if !ok {
		writeUserError(w, r, fmt.Sprintf("Could not find location %q.", endPlace))
		return
	}

	est, ok := h.Routes.Estimate(ctx, start, end)
	if !ok {
		writeUserError(w, r, "Could not calculate travel time between those locations.")
		return
	}

	condition, weatherDelay := h.lookupWeather(ctx, startPlace)

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	plan, err := services.PlanAlarm(arrival, ready, est.DurationMinutes, weatherDelay, now)
	if err != nil {
		log.Printf("plan alarm failed: %v", err)
		writeUserError(w, r, "Could not calculate a wake-up time from those inputs.")
		return
	}

	res := dto.CalculateResponse{
		ArrivalTime:     plan.ArriveAt.Format("15:04"),
		GettingReady:    plan.GettingReadyMinutes,
		ETA:             round1(plan.ETAMinutes),
		Margin:          round1(plan.MarginMinutes),
		AlarmTime:       plan.AlarmAt.Format("15:04"),
		TotalTravelTime: round1(plan.TotalTravelMinutes),
		Weather:         condition,
		WeatherDelay:    plan.WeatherDelayMinutes,
		Message: fmt.Sprintf(
			"Wake up at %s to arrive by %s (ETA %.0f min, margin %.0f min).",
			plan.AlarmAt.Format("15:04"), plan.ArriveAt.Format("15:04"),
			plan.ETAMinutes, plan.MarginMinutes,
		),
	}

	if currentAlarm != "" {
		if cur, err := time.Parse("15:04", currentAlarm); err == nil {
			earlyEnough := !clockAfter(cur, plan.AlarmAt)
			res.CurrentAlarmOK = &earlyEnough
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// lookupWeather is best-effort: no provider or any failure means no delay.
func (h *CalculateHandler) lookupWeather(ctx context.Context, place string) (string, float64) {
	if h.Weather == nil {
		return "", 0
	}

	condition, err := h.Weather.CurrentCondition(ctx, place)
	if err != nil {
		log.Printf("weather lookup failed: %v", err)
		return "", 0
	}

	return condition, services.DelayForCondition(condition)
}

// clockAfter compares time-of-day only.
func clockAfter(a time.Time, b time.Time) bool {
	am := a.Hour()*60 + a.Minute()
	bm := b.Hour()*60 + b.Minute()
	return am > bm
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
