package mock

import (
	"context"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

// SignIn double for handler tests.
type SignIn struct {
	Out    *model.AuthUser
	Err    error
	Called bool
	In     port.SignInInput
}

func (m *SignIn) SignIn(ctx context.Context, in port.SignInInput) (*model.AuthUser, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// SignOut double for handler tests.
type SignOut struct {
	Err    error
	Called bool
}

func (m *SignOut) SignOut(ctx context.Context) error {
	m.Called = true
	return m.Err
}

// CurrentUserProvider returns a fixed session record.
type CurrentUserProvider struct {
	Out model.AuthUser
}

func (m *CurrentUserProvider) CurrentUser(ctx context.Context) model.AuthUser {
	return m.Out
}

// Library returns canned listings and records ratings.
type Library struct {
	SongsOut    []model.Song
	LikedOut    []model.Song
	DislikedOut []model.Song
	ReloadErr   error

	ReloadCalled bool
	RatedSongID  string
	RatedKind    port.RatingKind
}

func (m *Library) Songs(ctx context.Context) []model.Song    { return m.SongsOut }
func (m *Library) Liked(ctx context.Context) []model.Song    { return m.LikedOut }
func (m *Library) Disliked(ctx context.Context) []model.Song { return m.DislikedOut }

func (m *Library) Reload(ctx context.Context) error {
	m.ReloadCalled = true
	return m.ReloadErr
}

func (m *Library) Rate(ctx context.Context, songID string, kind port.RatingKind) {
	m.RatedSongID = songID
	m.RatedKind = kind
}

func (m *Library) Song(ctx context.Context, songID string) (model.Song, bool) {
	for _, s := range m.SongsOut {
		if s.ID == songID {
			return s, true
		}
	}
	return model.Song{}, false
}

// ShortsProvider double for handler tests.
type ShortsProvider struct {
	Out []model.Short
	Err error
}

func (m *ShortsProvider) Shorts(ctx context.Context) ([]model.Short, error) {
	return m.Out, m.Err
}

func (m *ShortsProvider) Short(ctx context.Context, id string) (model.Short, bool) {
	for _, s := range m.Out {
		if s.ID == id {
			return s, true
		}
	}
	return model.Short{}, false
}

// PlaylistProvider double for handler tests.
type PlaylistProvider struct {
	ListOut []model.Playlist
	OneOut  *model.Playlist
	ListErr error
	OneErr  error
}

func (m *PlaylistProvider) Playlists(ctx context.Context) ([]model.Playlist, error) {
	return m.ListOut, m.ListErr
}

func (m *PlaylistProvider) Playlist(ctx context.Context, id string) (*model.Playlist, error) {
	return m.OneOut, m.OneErr
}

// FeedProvider double for handler tests.
type FeedProvider struct {
	StoriesOut   []model.Story
	FollowersOut []model.Follower
	StoriesErr   error
	FollowersErr error
}

func (m *FeedProvider) Stories(ctx context.Context) ([]model.Story, error) {
	return m.StoriesOut, m.StoriesErr
}

func (m *FeedProvider) Followers(ctx context.Context) ([]model.Follower, error) {
	return m.FollowersOut, m.FollowersErr
}
