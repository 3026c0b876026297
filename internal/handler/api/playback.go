package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/playback"
	"github.com/tunewave/tunewave-go/internal/port"
	"github.com/tunewave/tunewave-go/internal/validation"
)

type PlayRequest struct {
	SongID string   `json:"song_id" validate:"required"`
	Queue  []string `json:"queue,omitempty"`
}

type SeekRequest struct {
	PositionMs int64 `json:"position_ms" validate:"gte=0"`
}

type ShuffleResponse struct {
	Shuffle bool `json:"shuffle"`
}

func PlayHandler(coord *playback.Coordinator, lib port.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlayRequest
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

		song, ok := lib.Song(r.Context(), req.SongID)
		if !ok {
			WriteError(w, http.StatusNotFound, "song not found", nil)
			return
		}

		var queue []model.Song
		if len(req.Queue) > 0 {
			queue = make([]model.Song, 0, len(req.Queue))
			for _, id := range req.Queue {
				s, ok := lib.Song(r.Context(), id)
				if !ok {
					log.Printf("⚠️  dropping unknown song #%s from the requested queue", id)
					continue
				}
				queue = append(queue, s)
			}
		}

		if err := coord.Play(r.Context(), song, queue); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not start playback", err)
			return
		}

		RespondJSON(w, http.StatusOK, coord.Status())
		log.Printf("✅  Playing song #%s", song.ID)
	}
}

func TogglePlaybackHandler(coord *playback.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := coord.TogglePlayPause(); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not toggle playback", err)
			return
		}
		RespondJSON(w, http.StatusOK, coord.Status())
	}
}

func NextHandler(coord *playback.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := coord.Next(r.Context()); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not advance playback", err)
			return
		}
		RespondJSON(w, http.StatusOK, coord.Status())
	}
}

func PreviousHandler(coord *playback.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := coord.Previous(r.Context()); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not rewind playback", err)
			return
		}
		RespondJSON(w, http.StatusOK, coord.Status())
	}
}

func SeekHandler(coord *playback.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SeekRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if req.PositionMs < 0 {
			WriteError(w, http.StatusBadRequest, "position must not be negative", nil)
			return
		}

		if err := coord.SeekTo(time.Duration(req.PositionMs) * time.Millisecond); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not seek", err)
			return
		}
		RespondJSON(w, http.StatusOK, coord.Status())
	}
}

func ShuffleHandler(coord *playback.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enabled := coord.ToggleShuffle()
		RespondJSON(w, http.StatusOK, ShuffleResponse{Shuffle: enabled})
		log.Printf("✅  Shuffle is now %v", enabled)
	}
}

func PlaybackStatusHandler(coord *playback.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, coord.Status())
	}
}
