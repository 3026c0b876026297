package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/tunewave/tunewave-go/internal/api_context"
	"github.com/tunewave/tunewave-go/internal/backend"
	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

type PlaylistListResponse struct {
	Playlists []model.Playlist `json:"playlists"`
}

func GetPlaylistsHandler(svc port.PlaylistProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlists, err := svc.Playlists(r.Context())
		if err != nil {
			WriteError(w, http.StatusBadGateway, "could not fetch playlists", err)
			return
		}

		RespondJSON(w, http.StatusOK, PlaylistListResponse{Playlists: playlists})
		log.Printf("✅  Returned %d playlists", len(playlists))
	}
}

func GetPlaylistHandler(svc port.PlaylistProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.PlaylistIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "playlist ID is required", nil)
			return
		}

		playlist, err := svc.Playlist(r.Context(), id)
		if err != nil {
			if errors.Is(err, backend.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "playlist not found", nil)
				return
			}
			WriteError(w, http.StatusBadGateway, "could not fetch playlist", err)
			return
		}

		RespondJSON(w, http.StatusOK, playlist)
		log.Printf("✅  Returned playlist #%s", id)
	}
}
