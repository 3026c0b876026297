package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

// Backend implements every backend port for tests.
type Backend struct {
	// canned values
	AuthOut      port.AuthResult
	UserOut      *model.User
	SongsOut     []model.Song
	ShortsOut    []model.Short
	PlaylistsOut []model.Playlist
	PlaylistOut  *model.Playlist
	StoriesOut   []model.Story
	FollowersOut []model.Follower
	BlobOut      []byte

	// errors
	AuthErr      error
	UserErr      error
	SongsErr     error
	ShortsErr    error
	PlaylistsErr error
	PlaylistErr  error
	StoriesErr   error
	FollowersErr error
	LikeErr      error
	DislikeErr   error
	BlobErr      error

	// call flags
	AuthCalled    bool
	SongsCalls    int
	LikeCalled    bool
	DislikeCalled bool
	BlobCalls     int
	LikedSongID   string
	LikedUserID   string
}

func (b *Backend) Authenticate(ctx context.Context, email, password string) (port.AuthResult, error) {
	b.AuthCalled = true
	if b.AuthErr != nil {
		return port.AuthResult{}, b.AuthErr
	}
	return b.AuthOut, nil
}

func (b *Backend) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if b.UserErr != nil {
		return nil, b.UserErr
	}
	return b.UserOut, nil
}

func (b *Backend) GetSongs(ctx context.Context, userID string) ([]model.Song, error) {
	b.SongsCalls++
	if b.SongsErr != nil {
		return nil, b.SongsErr
	}
	return b.SongsOut, nil
}

func (b *Backend) GetShorts(ctx context.Context, userID string) ([]model.Short, error) {
	if b.ShortsErr != nil {
		return nil, b.ShortsErr
	}
	return b.ShortsOut, nil
}

func (b *Backend) GetUserPlaylists(ctx context.Context, userID string) ([]model.Playlist, error) {
	if b.PlaylistsErr != nil {
		return nil, b.PlaylistsErr
	}
	return b.PlaylistsOut, nil
}

func (b *Backend) GetPlaylist(ctx context.Context, playlistID string) (*model.Playlist, error) {
	if b.PlaylistErr != nil {
		return nil, b.PlaylistErr
	}
	return b.PlaylistOut, nil
}

func (b *Backend) GetStories(ctx context.Context, userID string) ([]model.Story, error) {
	if b.StoriesErr != nil {
		return nil, b.StoriesErr
	}
	return b.StoriesOut, nil
}

func (b *Backend) GetFollowers(ctx context.Context, userID string) ([]model.Follower, error) {
	if b.FollowersErr != nil {
		return nil, b.FollowersErr
	}
	return b.FollowersOut, nil
}

func (b *Backend) LikeSong(ctx context.Context, songID, userID string) error {
	b.LikeCalled = true
	b.LikedSongID = songID
	b.LikedUserID = userID
	return b.LikeErr
}

func (b *Backend) DislikeSong(ctx context.Context, songID, userID string) error {
	b.DislikeCalled = true
	b.LikedSongID = songID
	b.LikedUserID = userID
	return b.DislikeErr
}

func (b *Backend) FetchBlob(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	b.BlobCalls++
	if b.BlobErr != nil {
		return nil, 0, b.BlobErr
	}
	return io.NopCloser(bytes.NewReader(b.BlobOut)), int64(len(b.BlobOut)), nil
}
