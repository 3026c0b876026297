package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

// FakeBackend is an in-process stand-in for the remote music backend. It
// serves the same REST contract the real one does, from seeded fixtures.
type FakeBackend struct {
	Server *httptest.Server

	mu        sync.Mutex
	UserID    string
	Password  string
	User      model.User
	Songs     []model.Song
	Shorts    []model.Short
	Playlists []model.Playlist
	Stories   []model.Story
	Followers []model.Follower
	Blobs     map[string][]byte

	LikeCalls    []string
	DislikeCalls []string
	SongsCalls   int
}

// StartFakeBackend boots the stub server with a single known user. Callers
// seed fixtures through the exported fields before driving requests.
func StartFakeBackend(userID, password string) *FakeBackend {
	b := &FakeBackend{
		UserID:   userID,
		Password: password,
		User: model.User{
			ID:       userID,
			Email:    "tester@example.com",
			Nickname: "tester",
			IsActive: true,
		},
		Blobs: make(map[string][]byte),
	}

	r := chi.NewRouter()
	r.Post("/api/v1/auth/authenticate", b.authenticate)
	r.Get("/api/v1/users/{id}", b.getUser)
	r.Get("/api/v1/songs/{id}", b.getSongs)
	r.Post("/api/v1/songs/{id}/like", b.rateSong(&b.LikeCalls))
	r.Post("/api/v1/songs/{id}/dislike", b.rateSong(&b.DislikeCalls))
	r.Get("/api/v1/shorts/{id}", b.getShorts)
	r.Get("/api/v1/playlists/{id}", b.getPlaylists)
	r.Get("/api/v1/stories/user/{id}", b.getStories)
	r.Get("/api/v1/followers/{id}", b.getFollowers)
	r.Get("/blobs/{name}", b.getBlob)

	b.Server = httptest.NewServer(r)
	return b
}

func (b *FakeBackend) URL() string {
	return b.Server.URL
}

// BlobURL returns the absolute URL of a seeded blob.
func (b *FakeBackend) BlobURL(name string) string {
	return b.Server.URL + "/blobs/" + name
}

func (b *FakeBackend) SeedBlob(name string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Blobs[name] = data
}

func (b *FakeBackend) Close() {
	b.Server.Close()
}

func (b *FakeBackend) authenticate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	out := port.AuthResult{}
	if in.Password == b.Password {
		out.Authenticated = true
		out.UserID = b.UserID
	} else {
		out.Message = "invalid credentials"
	}
	writeJSON(w, out)
}

func (b *FakeBackend) getUser(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if chi.URLParam(r, "id") != b.UserID {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, b.User)
}

func (b *FakeBackend) getSongs(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.SongsCalls++
	writeJSON(w, b.Songs)
}

func (b *FakeBackend) rateSong(calls *[]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		*calls = append(*calls, chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusOK)
	}
}

func (b *FakeBackend) getShorts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, b.Shorts)
}

// getPlaylists serves both shapes of the playlists route: the user's
// listing when the path ID is the user ID, a single playlist otherwise.
func (b *FakeBackend) getPlaylists(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := chi.URLParam(r, "id")
	if id == b.UserID {
		writeJSON(w, b.Playlists)
		return
	}
	for _, p := range b.Playlists {
		if p.ID == id {
			writeJSON(w, p)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (b *FakeBackend) getStories(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, b.Stories)
}

func (b *FakeBackend) getFollowers(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, b.Followers)
}

func (b *FakeBackend) getBlob(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.Blobs[chi.URLParam(r, "name")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
