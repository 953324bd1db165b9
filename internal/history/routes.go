package history

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts conversation endpoints under /api/v1 on the router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/v1/conversations", func(r chi.Router) {
		r.Get("/{id}", handleGetConversation(store))
		r.Delete("/{id}", handleDeleteConversation(store))
	})
	r.Get("/api/v1/session/{id}", handleSessionInfo(store))
}

func handleGetConversation(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		entries, err := store.GetRecent(r.Context(), id, limit)
		if err != nil {
			http.Error(w, "failed to retrieve conversation history", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func handleDeleteConversation(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		deleted, err := store.Delete(r.Context(), id)
		if err != nil {
			http.Error(w, "failed to delete conversation", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"conversation_id": id,
			"deleted_turns":   deleted,
		})
	}
}

func handleSessionInfo(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		sum, err := store.Summarize(r.Context(), id)
		if err != nil {
			http.Error(w, "failed to retrieve session information", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"conversation_id": id,
			"session_active":  sum.MessageCount > 0,
			"message_count":   sum.MessageCount,
			"created_at":      sum.CreatedAt,
			"last_activity":   sum.LastMessageAt,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
