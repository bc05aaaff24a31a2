package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"wakeup-route-service/internal/domain"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// NominatimClient resolves free-text place names against the Nominatim
// search API. It performs no caching itself; the service layer decides what
// is worth keeping.
type NominatimClient struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatimClient(baseURL string) *NominatimClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &NominatimClient{
		session: &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
		// Nominatim's usage policy requires an identifying agent.
		userAgent: "wakeup-route-service/1.0",
	}
}

// Nominatim serializes lat/lon as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search returns the coordinates of the top match for query.
// Exactly one result is consulted; there is no disambiguation.
func (n *NominatimClient) Search(ctx context.Context, query string) (domain.Coordinates, error) {
	results, err := n.search(ctx, query, 1)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lat for %q: %w", query, err)
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lon for %q: %w", query, err)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, nil
}

// Suggest returns up to limit display names matching query.
func (n *NominatimClient) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	results, err := n.search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.DisplayName)
	}

	return names, nil
}

func (n *NominatimClient) search(ctx context.Context, query string, limit int) ([]nominatimResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search", nil)
	if err != nil {
		return nil, fmt.Errorf("create geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request: unexpected status: %d", resp.StatusCode)
	}

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	return decoded, nil
}
