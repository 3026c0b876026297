package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/tunewave/tunewave-go/internal/mock"
	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

func TestSignIn_Success(t *testing.T) {
	backend := &mock.Backend{
		AuthOut: port.AuthResult{Authenticated: true, UserID: "user-42"},
		UserOut: &model.User{ID: "user-42", Email: "jane@example.com", Nickname: "jane"},
	}
	store := mock.NewSessionStore()

	svc := NewSignIn(backend, backend, store)
	got, err := svc.SignIn(context.Background(), port.SignInInput{Email: "jane@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("SignIn() returned unexpected error: %v", err)
	}

	if got.ID != "user-42" || got.Provider != model.ProviderEmail {
		t.Errorf("unexpected auth user: %+v", got)
	}
	if got.Name != "jane" {
		t.Errorf("expected nickname as display name, got %q", got.Name)
	}
	if !store.SaveCalled || store.User == nil || store.User.ID != "user-42" {
		t.Error("expected the session to be persisted")
	}
}

func TestSignIn_NicknameFallsBackToEmailLocalPart(t *testing.T) {
	backend := &mock.Backend{
		AuthOut: port.AuthResult{Authenticated: true, UserID: "user-42"},
		UserOut: &model.User{ID: "user-42", Email: "jane@example.com"},
	}
	store := mock.NewSessionStore()

	svc := NewSignIn(backend, backend, store)
	got, err := svc.SignIn(context.Background(), port.SignInInput{Email: "jane@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("SignIn() returned unexpected error: %v", err)
	}
	if got.Name != "jane" {
		t.Errorf("expected email local part as name, got %q", got.Name)
	}
}

func TestSignIn_Rejected(t *testing.T) {
	backend := &mock.Backend{
		AuthOut: port.AuthResult{Authenticated: false, Message: "bad credentials"},
	}
	store := mock.NewSessionStore()

	svc := NewSignIn(backend, backend, store)
	_, err := svc.SignIn(context.Background(), port.SignInInput{Email: "jane@example.com", Password: "nope"})
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
	if store.SaveCalled {
		t.Error("a rejected sign-in must not persist a session")
	}
}

func TestSignIn_AuthenticateError(t *testing.T) {
	backend := &mock.Backend{AuthErr: errors.New("network down")}
	store := mock.NewSessionStore()

	svc := NewSignIn(backend, backend, store)
	_, err := svc.SignIn(context.Background(), port.SignInInput{Email: "jane@example.com", Password: "pw"})
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestSignIn_ProfileFetchError(t *testing.T) {
	backend := &mock.Backend{
		AuthOut: port.AuthResult{Authenticated: true, UserID: "user-42"},
		UserErr: errors.New("500"),
	}
	store := mock.NewSessionStore()

	svc := NewSignIn(backend, backend, store)
	_, err := svc.SignIn(context.Background(), port.SignInInput{Email: "jane@example.com", Password: "pw"})
	if !errors.Is(err, ErrProfileUnavailable) {
		t.Fatalf("expected ErrProfileUnavailable, got %v", err)
	}
	if store.SaveCalled {
		t.Error("no session must be persisted when the profile fetch fails")
	}
}

func TestSignIn_PersistError(t *testing.T) {
	backend := &mock.Backend{
		AuthOut: port.AuthResult{Authenticated: true, UserID: "user-42"},
		UserOut: &model.User{ID: "user-42", Email: "jane@example.com"},
	}
	store := mock.NewSessionStore()
	store.SaveErr = errors.New("disk full")

	svc := NewSignIn(backend, backend, store)
	if _, err := svc.SignIn(context.Background(), port.SignInInput{Email: "jane@example.com", Password: "pw"}); err == nil {
		t.Fatal("expected error when persisting fails")
	}
}

func TestSignOut(t *testing.T) {
	store := mock.NewSessionStore()
	store.User = &model.AuthUser{ID: "user-42", Provider: model.ProviderEmail}

	svc := NewSignOut(store)
	if err := svc.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut() returned unexpected error: %v", err)
	}
	if !store.DeleteCalled || store.User != nil {
		t.Error("expected the persisted session to be cleared")
	}
}

func TestCurrentUser_Persisted(t *testing.T) {
	store := mock.NewSessionStore()
	store.User = &model.AuthUser{ID: "user-42", Provider: model.ProviderEmail}

	svc := NewCurrentUser(store)
	got := svc.CurrentUser(context.Background())
	if got.ID != "user-42" {
		t.Errorf("expected the persisted user, got %+v", got)
	}
}

func TestCurrentUser_GuestFallback(t *testing.T) {
	store := mock.NewSessionStore()

	svc := NewCurrentUser(store)
	got := svc.CurrentUser(context.Background())
	if got.ID != GuestUserID || got.Provider != model.ProviderGuest {
		t.Errorf("expected the guest identity, got %+v", got)
	}
}

func TestCurrentUser_StoreErrorFallsBackToGuest(t *testing.T) {
	store := mock.NewSessionStore()
	store.GetErr = errors.New("db locked")

	svc := NewCurrentUser(store)
	got := svc.CurrentUser(context.Background())
	if got.ID != GuestUserID {
		t.Errorf("a store failure must degrade to guest, got %+v", got)
	}
}
