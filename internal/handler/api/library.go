package api

import (
	"log"
	"net/http"

	"github.com/tunewave/tunewave-go/internal/api_context"
	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

type SongListResponse struct {
	Songs []model.Song `json:"songs"`
}

func GetSongsHandler(lib port.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		songs := lib.Songs(r.Context())
		RespondJSON(w, http.StatusOK, SongListResponse{Songs: songs})
		log.Printf("✅  Returned %d songs", len(songs))
	}
}

func GetLikedSongsHandler(lib port.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, SongListResponse{Songs: lib.Liked(r.Context())})
	}
}

func GetDislikedSongsHandler(lib port.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, SongListResponse{Songs: lib.Disliked(r.Context())})
	}
}

// RateSongHandler submits a like or a dislike. Ratings are fire-and-forget
// towards the backend, so the response is always 202.
func RateSongHandler(lib port.Library, kind port.RatingKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.SongIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "song ID is required", nil)
			return
		}

		lib.Rate(r.Context(), id, kind)

		w.WriteHeader(http.StatusAccepted)
		log.Printf("✅  Recorded %s for song #%s", kind, id)
	}
}
