package metrics

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the admin monitoring endpoints.
func RegisterRoutes(r chi.Router, m *Monitor) {
	r.Get("/admin/metrics/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.Health())
	})

	r.Get("/admin/metrics/usage", func(w http.ResponseWriter, r *http.Request) {
		hours := 24
		if s := r.URL.Query().Get("hours"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				hours = n
			}
		}
		writeJSON(w, http.StatusOK, m.Usage(hours))
	})

	r.Get("/admin/metrics/endpoint", func(w http.ResponseWriter, r *http.Request) {
		endpoint := r.URL.Query().Get("path")
		if endpoint == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "path query parameter is required"})
			return
		}
		hours := 24
		if s := r.URL.Query().Get("hours"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				hours = n
			}
		}
		stats, ok := m.EndpointStats(endpoint, time.Duration(hours)*time.Hour)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no data found for endpoint"})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
