package auth

import (
	"context"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

// GuestUserID is the fixed identity every unauthenticated session acts as.
const GuestUserID = "3762deba-87a9-482e-b716-2111232148ca"

// GuestUser returns the synthetic record used when no session is persisted.
func GuestUser() model.AuthUser {
	return model.AuthUser{
		ID:       GuestUserID,
		Email:    "guest@example.com",
		Name:     "Guest",
		Nickname: "Guest",
		Provider: model.ProviderGuest,
	}
}

type currentUserSrv struct {
	store port.SessionStore
}

// compile-time check: *currentUserSrv must satisfy port.CurrentUserProvider
var _ port.CurrentUserProvider = (*currentUserSrv)(nil)

func NewCurrentUser(store port.SessionStore) port.CurrentUserProvider {
	return &currentUserSrv{store}
}

// CurrentUser resolves the persisted session. Any failure or absence
// degrades to the guest identity, never an error.
func (s *currentUserSrv) CurrentUser(ctx context.Context) model.AuthUser {
	u, err := s.store.GetUser(ctx)
	if err != nil || u == nil {
		return GuestUser()
	}
	return *u
}
