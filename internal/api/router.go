package api

import (
	"embed"
	"net/http"
	"time"

	"wakeup-route-service/internal/api/handlers"
	"wakeup-route-service/internal/ports"
)

//go:embed web/index.html
var webFS embed.FS

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	geocoder ports.Geocoder,
	places ports.PlaceIndex,
	routes ports.RouteEstimator,
	weather ports.WeatherProvider,
	now func() time.Time,
) http.Handler {
	mux := http.NewServeMux()

	calcHandler := &handlers.CalculateHandler{
		Geocoder: geocoder,
		Routes:   routes,
		Weather:  weather,
		Now:      now,
	}
	acHandler := &handlers.AutocompleteHandler{Places: places}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/calculate", calcHandler.Calculate)
	mux.HandleFunc("/autocomplete", acHandler.Autocomplete)
	mux.HandleFunc("/", serveIndex)

	return loggingMiddleware(recoverMiddleware(mux))
}

// serveIndex serves the static page; everything else under "/" is a JSON 404.
func serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}` + "\n"))
		return
	}

	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
