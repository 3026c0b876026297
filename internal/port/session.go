package port

import (
	"context"

	"github.com/tunewave/tunewave-go/internal/model"
)

// SessionStore persists the authenticated user record and small preferences
// locally. GetUser returns (nil, nil) for an absent or unreadable record —
// the caller treats that as a guest session.
type SessionStore interface {
	GetUser(ctx context.Context) (*model.AuthUser, error)
	SaveUser(ctx context.Context, u *model.AuthUser) error
	DeleteUser(ctx context.Context) error
	GetPreference(ctx context.Context, key string) (string, bool, error)
	SetPreference(ctx context.Context, key, value string) error
}
