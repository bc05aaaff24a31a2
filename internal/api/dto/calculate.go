package dto

// CalculateResponse is the success payload of POST /calculate.
// Minute quantities are reported to one decimal; times as 24h HH:MM.
type CalculateResponse struct {
	ArrivalTime     string  `json:"arrival_time"`
	GettingReady    int     `json:"getting_ready"`
	ETA             float64 `json:"eta"`
	Margin          float64 `json:"margin"`
	AlarmTime       string  `json:"alarm_time"`
	TotalTravelTime float64 `json:"total_travel_time"`
	Weather         string  `json:"weather,omitempty"`
	WeatherDelay    float64 `json:"weather_delay,omitempty"`
	CurrentAlarmOK  *bool   `json:"current_alarm_ok,omitempty"`
	Message         string  `json:"message"`
}
