package port

import (
	"context"
	"io"

	"github.com/tunewave/tunewave-go/internal/model"
)

// AuthResult is the backend's answer to an authentication attempt.
type AuthResult struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId"`
	Message       string `json:"message"`
}

// Authenticator verifies credentials against the backend.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (AuthResult, error)
}

// UserFetcher retrieves a user profile.
type UserFetcher interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

// SongLister fetches the song library for a user.
type SongLister interface {
	GetSongs(ctx context.Context, userID string) ([]model.Song, error)
}

// SongRater submits like/dislike mutations.
type SongRater interface {
	LikeSong(ctx context.Context, songID, userID string) error
	DislikeSong(ctx context.Context, songID, userID string) error
}

// ShortLister fetches the short-form feed.
type ShortLister interface {
	GetShorts(ctx context.Context, userID string) ([]model.Short, error)
}

// PlaylistFetcher fetches playlists and their member songs.
type PlaylistFetcher interface {
	GetUserPlaylists(ctx context.Context, userID string) ([]model.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID string) (*model.Playlist, error)
}

// FeedFetcher fetches the social feed data.
type FeedFetcher interface {
	GetStories(ctx context.Context, userID string) ([]model.Story, error)
	GetFollowers(ctx context.Context, userID string) ([]model.Follower, error)
}

// BlobFetcher streams a media blob from its remote URL. The returned size is
// the Content-Length, or -1 when unknown.
type BlobFetcher interface {
	FetchBlob(ctx context.Context, url string) (io.ReadCloser, int64, error)
}
