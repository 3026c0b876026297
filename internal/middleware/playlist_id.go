package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tunewave/tunewave-go/internal/api_context"
	"github.com/tunewave/tunewave-go/internal/handler/api"
)

func WithPlaylistID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "playlist ID is required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.PlaylistIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
