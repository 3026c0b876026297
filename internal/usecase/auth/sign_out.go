package auth

import (
	"context"
	"log"

	"github.com/tunewave/tunewave-go/internal/port"
)

type signOutSrv struct {
	store port.SessionStore
}

// compile-time check: *signOutSrv must satisfy port.SignOut
var _ port.SignOut = (*signOutSrv)(nil)

func NewSignOut(store port.SessionStore) port.SignOut {
	return &signOutSrv{store}
}

func (s *signOutSrv) SignOut(ctx context.Context) error {
	log.Print("signing out...")
	return s.store.DeleteUser(ctx)
}
