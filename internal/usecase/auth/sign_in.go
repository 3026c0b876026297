package auth

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

type signInSrv struct {
	auth  port.Authenticator
	users port.UserFetcher
	store port.SessionStore
}

// compile-time check: *signInSrv must satisfy port.SignIn
var _ port.SignIn = (*signInSrv)(nil)

func NewSignIn(auth port.Authenticator, users port.UserFetcher, store port.SessionStore) port.SignIn {
	return &signInSrv{auth, users, store}
}

func (s *signInSrv) SignIn(ctx context.Context, in port.SignInInput) (*model.AuthUser, error) {
	log.Printf("signing in %q...", in.Email)

	res, err := s.auth.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	if !res.Authenticated {
		return nil, ErrAuthenticationFailed
	}

	user, err := s.users.GetUser(ctx, res.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}

	name := user.Nickname
	if name == "" {
		name = strings.SplitN(user.Email, "@", 2)[0]
	}
	authUser := &model.AuthUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      name,
		Nickname:  user.Nickname,
		AvatarURL: user.AvatarURL,
		Provider:  model.ProviderEmail,
	}

	if err := s.store.SaveUser(ctx, authUser); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	log.Printf("✅ signed in user #%s", authUser.ID)
	return authUser, nil
}
