package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tunewave/tunewave-go/internal/mock"
	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/usecase/auth"
)

func TestSignInHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcOut     *model.AuthUser
		svcErr     error
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "invalid json",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       `{"password":"pw"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not an email",
			body:       `{"email":"nope","password":"pw"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "auth rejected",
			body:       `{"email":"jane@example.com","password":"wrong"}`,
			svcErr:     auth.ErrAuthenticationFailed,
			wantStatus: http.StatusUnauthorized,
			wantCalled: true,
		},
		{
			name:       "service error",
			body:       `{"email":"jane@example.com","password":"pw"}`,
			svcErr:     errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCalled: true,
		},
		{
			name:       "happy path",
			body:       `{"email":"jane@example.com","password":"pw"}`,
			svcOut:     &model.AuthUser{ID: "user-42", Email: "jane@example.com", Provider: model.ProviderEmail},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.SignIn{Out: tc.svcOut, Err: tc.svcErr}
			h := SignInHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if mockSvc.Called != tc.wantCalled {
				t.Errorf("service called = %v; want %v", mockSvc.Called, tc.wantCalled)
			}

			if tc.wantStatus == http.StatusOK {
				var got model.AuthUser
				if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if got.ID != "user-42" {
					t.Errorf("response user = %+v", got)
				}
			}
		})
	}
}

func TestSignOutHandler(t *testing.T) {
	mockSvc := &mock.SignOut{}
	h := SignOutHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want 204", rec.Code)
	}
	if !mockSvc.Called {
		t.Error("expected the service to be called")
	}
}

func TestSignOutHandler_Error(t *testing.T) {
	mockSvc := &mock.SignOut{Err: errors.New("db locked")}
	h := SignOutHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-out", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
}

func TestMeHandler(t *testing.T) {
	who := &mock.CurrentUserProvider{Out: model.AuthUser{ID: "user-42", Provider: model.ProviderEmail}}
	h := MeHandler(who)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var got model.AuthUser
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.ID != "user-42" {
		t.Errorf("response user = %+v", got)
	}
}
