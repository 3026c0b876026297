package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tunewave/tunewave-go/internal/playback"
	"github.com/tunewave/tunewave-go/internal/port"
	"github.com/tunewave/tunewave-go/internal/validation"
)

type PlaySampleRequest struct {
	ShortID string `json:"short_id" validate:"required"`
}

func PlaySampleHandler(coord *playback.SamplesCoordinator, shorts port.ShortsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlaySampleRequest
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
			return
		}

		short, ok := shorts.Short(r.Context(), req.ShortID)
		if !ok {
			WriteError(w, http.StatusNotFound, "short not found", nil)
			return
		}

		if err := coord.Play(r.Context(), short); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not start the sample", err)
			return
		}

		RespondJSON(w, http.StatusOK, coord.Status())
		log.Printf("✅  Playing sample #%s", short.ID)
	}
}

func ToggleSampleHandler(coord *playback.SamplesCoordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := coord.TogglePlayPause(); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not toggle the sample", err)
			return
		}
		RespondJSON(w, http.StatusOK, coord.Status())
	}
}

func SampleStatusHandler(coord *playback.SamplesCoordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, coord.Status())
	}
}
