package mock

import (
	"context"
	"sync"

	"github.com/tunewave/tunewave-go/internal/model"
)

// SessionStore keeps the session record and preferences in memory.
type SessionStore struct {
	mu    sync.Mutex
	User  *model.AuthUser
	Prefs map[string]string

	// errors
	GetErr  error
	SaveErr error
	PrefErr error

	// call flags
	SaveCalled   bool
	DeleteCalled bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{Prefs: make(map[string]string)}
}

func (s *SessionStore) GetUser(ctx context.Context) (*model.AuthUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return s.User, nil
}

func (s *SessionStore) SaveUser(ctx context.Context, u *model.AuthUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalled = true
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.User = u
	return nil
}

func (s *SessionStore) DeleteUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DeleteCalled = true
	s.User = nil
	return nil
}

func (s *SessionStore) GetPreference(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PrefErr != nil {
		return "", false, s.PrefErr
	}
	v, ok := s.Prefs[key]
	return v, ok, nil
}

func (s *SessionStore) SetPreference(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PrefErr != nil {
		return s.PrefErr
	}
	s.Prefs[key] = value
	return nil
}
