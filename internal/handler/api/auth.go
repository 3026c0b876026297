package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tunewave/tunewave-go/internal/port"
	"github.com/tunewave/tunewave-go/internal/usecase/auth"
	"github.com/tunewave/tunewave-go/internal/validation"
)

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func SignInHandler(svc port.SignIn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		user, err := svc.SignIn(r.Context(), port.SignInInput{Email: req.Email, Password: req.Password})
		if err != nil {
			if errors.Is(err, auth.ErrAuthenticationFailed) {
				WriteError(w, http.StatusUnauthorized, "authentication failed", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not sign in", err)
			return
		}

		RespondJSON(w, http.StatusOK, user)
		log.Printf("✅  Successfully signed in user #%s", user.ID)
	}
}

func SignOutHandler(svc port.SignOut) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.SignOut(r.Context()); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not sign out", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Print("✅  Successfully signed out")
	}
}

func MeHandler(who port.CurrentUserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, who.CurrentUser(r.Context()))
	}
}
