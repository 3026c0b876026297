package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tunewave/tunewave-go/internal/api_context"
	"github.com/tunewave/tunewave-go/internal/handler/api"
	"github.com/tunewave/tunewave-go/internal/port"
)

// WithCategory resolves the {category} path segment to a canonical cache
// category name before the handler runs.
func WithCategory() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, "category")
			if raw == "" {
				api.WriteError(w, http.StatusBadRequest, "cache category is required", nil)
				return
			}
			cat, err := port.ParseCategory(raw)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("%q is not a valid cache category", raw), nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.CategoryKey, string(cat))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
