package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org"

// OpenWeatherMapProvider fetches the current headline condition for a place
// name. It is an optional extra on the alarm path, so the timeout is kept
// tight.
type OpenWeatherMapProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewOpenWeatherMapProvider(apiKey, baseURL string) *OpenWeatherMapProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenWeatherMapProvider{
		session: &http.Client{Timeout: 3 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

type currentWeatherResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

func (p *OpenWeatherMapProvider) CurrentCondition(ctx context.Context, place string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/data/2.5/weather", nil)
	if err != nil {
		return "", fmt.Errorf("create weather request: %w", err)
	}

	q := req.URL.Query()
	q.Set("q", place)
	q.Set("appid", p.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := p.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather request: unexpected status: %d", resp.StatusCode)
	}

	var decoded currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode weather response: %w", err)
	}

	if len(decoded.Weather) == 0 {
		return "", fmt.Errorf("weather response has no conditions")
	}

	return decoded.Weather[0].Main, nil
}
