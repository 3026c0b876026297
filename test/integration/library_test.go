package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tunewave/tunewave-go/internal/backend"
	"github.com/tunewave/tunewave-go/internal/handler/api"
	cMiddleware "github.com/tunewave/tunewave-go/internal/middleware"
	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
	"github.com/tunewave/tunewave-go/internal/usecase/auth"
	"github.com/tunewave/tunewave-go/internal/usecase/library"
	"github.com/tunewave/tunewave-go/test/testutil"
)

func decodeSongs(t *testing.T, resp *http.Response) []model.Song {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	var out api.SongListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	return out.Songs
}

func TestLibraryFlowIntegration(t *testing.T) {
	repo := setupSessionRepo(t)
	if err := repo.SaveUser(context.Background(), &model.AuthUser{
		ID:       testUserID,
		Email:    "tester@example.com",
		Provider: model.ProviderEmail,
	}); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	fake := testutil.StartFakeBackend(testUserID, testPassword)
	defer fake.Close()
	fake.Songs = []model.Song{
		{ID: "s1", Title: "First", AudioURL: "https://cdn.example.com/s1.mp3", IsLiked: true},
		{ID: "s2", Title: "Second", AudioURL: "https://cdn.example.com/s2.mp3", IsDisliked: true},
		{ID: "s3", Title: "Third", AudioURL: "https://cdn.example.com/s3.mp3"},
	}

	client := backend.NewClient(fake.URL(), 5*time.Second)
	who := auth.NewCurrentUser(repo)
	lib := library.NewService(client, client, who)

	r := chi.NewRouter()
	r.Get("/library/songs", api.GetSongsHandler(lib))
	r.Get("/library/songs/liked", api.GetLikedSongsHandler(lib))
	r.Get("/library/songs/disliked", api.GetDislikedSongsHandler(lib))
	r.With(cMiddleware.WithSongID()).
		Post("/library/songs/{id}/like", api.RateSongHandler(lib, port.RatingLike))
	srv := httptest.NewServer(r)
	defer srv.Close()

	// first listing triggers the lazy load
	resp, err := http.Get(srv.URL + "/library/songs")
	if err != nil {
		t.Fatalf("GET songs: %v", err)
	}
	songs := decodeSongs(t, resp)
	if len(songs) != 3 {
		t.Fatalf("expected 3 songs, got %d", len(songs))
	}
	if fake.SongsCalls != 1 {
		t.Errorf("expected 1 backend fetch, got %d", fake.SongsCalls)
	}

	// a second listing is served from the snapshot
	resp, err = http.Get(srv.URL + "/library/songs")
	if err != nil {
		t.Fatalf("GET songs again: %v", err)
	}
	decodeSongs(t, resp)
	if fake.SongsCalls != 1 {
		t.Errorf("second listing must not refetch, got %d calls", fake.SongsCalls)
	}

	// liked / disliked views filter the same snapshot
	resp, err = http.Get(srv.URL + "/library/songs/liked")
	if err != nil {
		t.Fatalf("GET liked: %v", err)
	}
	liked := decodeSongs(t, resp)
	if len(liked) != 1 || liked[0].ID != "s1" {
		t.Errorf("unexpected liked songs %+v", liked)
	}
	resp, err = http.Get(srv.URL + "/library/songs/disliked")
	if err != nil {
		t.Fatalf("GET disliked: %v", err)
	}
	disliked := decodeSongs(t, resp)
	if len(disliked) != 1 || disliked[0].ID != "s2" {
		t.Errorf("unexpected disliked songs %+v", disliked)
	}

	// liking a song hits the backend as the signed-in user and reloads
	resp = postJSON(t, srv.URL+"/library/songs/s3/like", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", resp.StatusCode)
	}
	if len(fake.LikeCalls) != 1 || fake.LikeCalls[0] != "s3" {
		t.Errorf("expected a like call for s3, got %v", fake.LikeCalls)
	}
	if fake.SongsCalls != 2 {
		t.Errorf("expected a reload after rating, got %d calls", fake.SongsCalls)
	}
}
