package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/tunewave/tunewave-go/internal/api_context"
	"github.com/tunewave/tunewave-go/internal/port"
)

// WithCurrentUser resolves the active session and stashes its user id in
// the request context, so log lines carry it. Guests resolve to the fixed
// guest id; an unparsable id just leaves the context untouched.
func WithCurrentUser(who port.CurrentUserProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := who.CurrentUser(r.Context())
			if id, err := uuid.Parse(user.ID); err == nil {
				ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, id)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
