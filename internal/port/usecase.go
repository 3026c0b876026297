package port

import (
	"context"
	"io"

	"github.com/tunewave/tunewave-go/internal/model"
)

// SignIn authenticates against the backend and persists the session.
type SignIn interface {
	SignIn(ctx context.Context, in SignInInput) (*model.AuthUser, error)
}
type SignInInput struct {
	Email    string
	Password string
}

// SignOut clears the persisted session, reverting to guest.
type SignOut interface {
	SignOut(ctx context.Context) error
}

// CurrentUserProvider resolves the active session, falling back to guest.
type CurrentUserProvider interface {
	CurrentUser(ctx context.Context) model.AuthUser
}

// Library owns the in-memory song listing and its mutations.
type Library interface {
	Songs(ctx context.Context) []model.Song
	Liked(ctx context.Context) []model.Song
	Disliked(ctx context.Context) []model.Song
	Reload(ctx context.Context) error
	// Rate submits a like or dislike and reloads the listing. Network
	// failures are logged and swallowed; the listing stays unchanged.
	Rate(ctx context.Context, songID string, kind RatingKind)
	Song(ctx context.Context, songID string) (model.Song, bool)
}

type RatingKind string

const (
	RatingLike    RatingKind = "like"
	RatingDislike RatingKind = "dislike"
)

// ShortsProvider lists the short-form feed for the current user.
type ShortsProvider interface {
	Shorts(ctx context.Context) ([]model.Short, error)
	Short(ctx context.Context, id string) (model.Short, bool)
}

// PlaylistProvider lists playlists for the current user.
type PlaylistProvider interface {
	Playlists(ctx context.Context) ([]model.Playlist, error)
	Playlist(ctx context.Context, id string) (*model.Playlist, error)
}

// FeedProvider lists stories and followers for the current user.
type FeedProvider interface {
	Stories(ctx context.Context) ([]model.Story, error)
	Followers(ctx context.Context) ([]model.Follower, error)
}

// MediaOpener resolves a media URL to a readable stream, serving from the
// blob cache when possible and teeing network fetches into it otherwise.
type MediaOpener interface {
	Open(ctx context.Context, cat Category, url string) (io.ReadCloser, error)
	EnsureCached(ctx context.Context, cat Category, url string) error
}
