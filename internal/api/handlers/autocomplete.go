package handlers

import (
	"log"
	"net/http"
	"strings"

	"wakeup-route-service/internal/api/dto"
	"wakeup-route-service/internal/ports"
)

const suggestionLimit = 5

// AutocompleteHandler serves place-name suggestions. It queries the place
// index directly on every request; suggestion lists are too query-specific
// to be worth caching.
type AutocompleteHandler struct {
	Places ports.PlaceIndex
}

// Autocomplete never fails outward: short queries and upstream errors both
// yield an empty list.
func (h *AutocompleteHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	empty := []dto.Suggestion{}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(q) < 2 {
		writeJSON(w, r, http.StatusOK, empty)
		return
	}

	names, err := h.Places.Suggest(r.Context(), q, suggestionLimit)
	if err != nil {
		log.Printf("autocomplete %q failed: %v", q, err)
		writeJSON(w, r, http.StatusOK, empty)
		return
	}

	res := make([]dto.Suggestion, 0, len(names))
	for _, full := range names {
		res = append(res, dto.Suggestion{
			DisplayName: shortenPlaceName(full),
			FullName:    full,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// shortenPlaceName keeps the first three comma-separated address components.
func shortenPlaceName(full string) string {
	parts := strings.Split(full, ",")
	if len(parts) > 3 {
		parts = parts[:3]
	}

	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return strings.Join(parts, ", ")
}
