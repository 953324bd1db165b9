package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts catalog endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/products/search", handleSearchByName(store))
	r.Get("/api/products/search-by-crop", handleSearchByCrop(store))
	r.Get("/api/products/{name}", handleGetByName(store))
	r.Get("/api/crops", handleListCrops(store))
	r.Get("/api/problems", handleListProblems(store))
}

func handleSearchByName(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if len(q) < 2 {
			http.Error(w, "query must be at least 2 characters long", http.StatusBadRequest)
			return
		}

		results, err := store.SearchByName(r.Context(), q, searchLimit(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"query":         q,
			"search_type":   "product_name",
			"results_count": len(results),
			"results":       results,
		})
	}
}

func handleSearchByCrop(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if len(q) < 2 {
			http.Error(w, "query must be at least 2 characters long", http.StatusBadRequest)
			return
		}

		results, err := store.SearchByText(r.Context(), q, searchLimit(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"query":         q,
			"search_type":   "crop",
			"results_count": len(results),
			"results":       results,
		})
	}
}

func handleGetByName(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(chi.URLParam(r, "name"))
		if len(name) < 2 {
			http.Error(w, "product name must be at least 2 characters long", http.StatusBadRequest)
			return
		}

		product, err := store.GetByExactName(r.Context(), name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if product == nil {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"product_name": name,
			"product":      product,
			"product_url":  ProductURL(product.ProductName),
		})
	}
}

func handleListCrops(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crops, err := store.Crops(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"crops_count": len(crops),
			"crops":       crops,
		})
	}
}

func handleListProblems(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		problems, err := store.Problems(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"problems_count": len(problems),
			"problems":       problems,
		})
	}
}

// searchLimit reads the limit query parameter, capped for performance.
func searchLimit(r *http.Request) int {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 50 {
		limit = 50
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
