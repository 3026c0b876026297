package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tunewave/tunewave-go/internal/api_context"
	"github.com/tunewave/tunewave-go/internal/backend"
	"github.com/tunewave/tunewave-go/internal/mock"
	"github.com/tunewave/tunewave-go/internal/model"
)

func TestGetPlaylistsHandler(t *testing.T) {
	svc := &mock.PlaylistProvider{ListOut: []model.Playlist{
		{ID: "p1", Name: "Favourites", IsDefaultLikes: true},
		{ID: "p2", Name: "Workout"},
	}}
	h := GetPlaylistsHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/playlists", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var got PlaylistListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got.Playlists) != 2 || !got.Playlists[0].IsDefaultLikes {
		t.Errorf("playlists = %+v", got.Playlists)
	}
}

func TestGetPlaylistsHandler_BackendError(t *testing.T) {
	svc := &mock.PlaylistProvider{ListErr: errors.New("backend down")}

	rec := httptest.NewRecorder()
	GetPlaylistsHandler(svc)(rec, httptest.NewRequest(http.MethodGet, "/playlists", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d; want 502", rec.Code)
	}
}

func TestGetPlaylistHandler(t *testing.T) {
	tests := []struct {
		name       string
		ctxID      string
		svc        *mock.PlaylistProvider
		wantStatus int
	}{
		{
			"missing id",
			"",
			&mock.PlaylistProvider{},
			http.StatusBadRequest,
		},
		{
			"not found",
			"ghost",
			&mock.PlaylistProvider{OneErr: backend.ErrNotFound},
			http.StatusNotFound,
		},
		{
			"backend error",
			"p1",
			&mock.PlaylistProvider{OneErr: errors.New("backend down")},
			http.StatusBadGateway,
		},
		{
			"found",
			"p1",
			&mock.PlaylistProvider{OneOut: &model.Playlist{
				ID:    "p1",
				Name:  "Favourites",
				Songs: []model.PlaylistSong{{SongID: "s1", SongTitle: "First"}},
			}},
			http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/playlists/"+tc.ctxID, nil)
			if tc.ctxID != "" {
				req = req.WithContext(context.WithValue(req.Context(), api_context.PlaylistIDKey, tc.ctxID))
			}
			rec := httptest.NewRecorder()
			GetPlaylistHandler(tc.svc)(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusOK {
				var got model.Playlist
				if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if got.ID != "p1" || len(got.Songs) != 1 {
					t.Errorf("playlist = %+v", got)
				}
			}
		})
	}
}
