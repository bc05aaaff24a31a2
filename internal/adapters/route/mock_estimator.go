package route

import (
	"context"

	"wakeup-route-service/internal/domain"
)

// MockEstimator is a scripted RouteEstimator for tests. It records how many
// times Estimate was called so tests can assert a provider was (not) tried.
type MockEstimator struct {
	Label  string
	Result domain.RouteEstimate
	OK     bool
	Calls  int
}

func NewMockEstimator(label string, result domain.RouteEstimate, ok bool) *MockEstimator {
	return &MockEstimator{Label: label, Result: result, OK: ok}
}

func (m *MockEstimator) Name() string { return m.Label }

func (m *MockEstimator) Estimate(_ context.Context, _, _ domain.Coordinates) (domain.RouteEstimate, bool) {
	m.Calls++
	return m.Result, m.OK
}
