package route

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func retryGet(t *testing.T, url string) (int32, error) {
	t.Helper()

	var attempts int32
	client := &http.Client{}

	resp, err := doWithRetry(context.Background(), client, func() (*http.Request, error) {
		atomic.AddInt32(&attempts, 1)
		return http.NewRequest(http.MethodGet, url, nil)
	})
	if resp != nil {
		resp.Body.Close()
	}

	return atomic.LoadInt32(&attempts), err
}

func TestDoWithRetryRetriesServerErrors(t *testing.T) {
	var served int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&served, 1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	attempts, err := retryGet(t, srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestDoWithRetryGivesUpAfterTwoRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	attempts, err := retryGet(t, srv.URL)
	if err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3 (1 + 2 retries)", attempts)
	}
}

func TestDoWithRetryDoesNotRetryClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	attempts, err := retryGet(t, srv.URL)
	if err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1 (4xx must fail immediately)", attempts)
	}
}
