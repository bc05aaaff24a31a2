package services

import (
	"testing"
	"time"
)

func TestPlanAlarm(t *testing.T) {
	now := time.Date(2026, 3, 2, 5, 30, 0, 0, time.UTC) // Monday, before the wake-up

	plan, err := PlanAlarm("08:00", 20, 30, 0, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.MarginMinutes != 22.5 {
		t.Fatalf("margin = %v, want 22.5", plan.MarginMinutes)
	}
	if plan.TotalTravelMinutes != 72.5 {
		t.Fatalf("total = %v, want 72.5", plan.TotalTravelMinutes)
	}
	if got := plan.AlarmAt.Format("15:04"); got != "06:47" {
		t.Fatalf("alarm = %s, want 06:47", got)
	}
	if got := plan.ArriveAt.Format("15:04"); got != "08:00" {
		t.Fatalf("arrival = %s, want 08:00", got)
	}
	if plan.AlarmAt.Day() != now.Day() {
		t.Fatalf("alarm rolled to another day: %v", plan.AlarmAt)
	}
}

func TestPlanAlarmMarginCap(t *testing.T) {
	now := time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC)

	plan, err := PlanAlarm("09:00", 10, 200, 0, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 15 + min(30, 50) = 45
	if plan.MarginMinutes != 45 {
		t.Fatalf("margin = %v, want 45", plan.MarginMinutes)
	}
}

func TestPlanAlarmRollsToNextDay(t *testing.T) {
	// 23:00 on the 2nd; arriving 06:00 means waking up "yesterday" unless
	// the plan shifts to the 3rd.
	now := time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)

	plan, err := PlanAlarm("06:00", 30, 40, 0, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.AlarmAt.Before(now) {
		t.Fatalf("alarm %v is in the past relative to %v", plan.AlarmAt, now)
	}
	if plan.ArriveAt.Day() != 3 {
		t.Fatalf("arrival day = %d, want 3", plan.ArriveAt.Day())
	}
}

func TestPlanAlarmNoRollForLaterToday(t *testing.T) {
	// Early afternoon, arrival tonight: the wake-up is later today and must
	// not be pushed to tomorrow even though its time-of-day reads "small".
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

	plan, err := PlanAlarm("22:00", 20, 30, 0, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.AlarmAt.Day() != 2 {
		t.Fatalf("alarm day = %d, want 2 (same day)", plan.AlarmAt.Day())
	}
}

func TestPlanAlarmWeatherDelayShiftsAlarmOnly(t *testing.T) {
	now := time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC)

	dry, err := PlanAlarm("08:00", 20, 30, 0, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wet, err := PlanAlarm("08:00", 20, 30, 10, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := dry.AlarmAt.Sub(wet.AlarmAt); diff != 10*time.Minute {
		t.Fatalf("weather shifted alarm by %v, want 10m", diff)
	}
	if wet.TotalTravelMinutes != dry.TotalTravelMinutes {
		t.Fatalf("weather delay leaked into total travel time: %v", wet.TotalTravelMinutes)
	}
}

func TestPlanAlarmValidation(t *testing.T) {
	now := time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC)

	if _, err := PlanAlarm("25:00", 20, 30, 0, now); err == nil {
		t.Fatal("expected error for invalid arrival time")
	}
	if _, err := PlanAlarm("08:00", 0, 30, 0, now); err == nil {
		t.Fatal("expected error for getting-ready below range")
	}
	if _, err := PlanAlarm("08:00", 241, 30, 0, now); err == nil {
		t.Fatal("expected error for getting-ready above range")
	}
}

func TestDelayForCondition(t *testing.T) {
	if d := DelayForCondition("Rain"); d != 10 {
		t.Fatalf("Rain delay = %v, want 10", d)
	}
	if d := DelayForCondition("Snow"); d != 10 {
		t.Fatalf("Snow delay = %v, want 10", d)
	}
	if d := DelayForCondition("Clear"); d != 0 {
		t.Fatalf("Clear delay = %v, want 0", d)
	}
	if d := DelayForCondition(""); d != 0 {
		t.Fatalf("empty condition delay = %v, want 0", d)
	}
}
