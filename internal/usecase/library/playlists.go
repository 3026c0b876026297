package library

import (
	"context"
	"fmt"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

type playlistsSrv struct {
	playlists port.PlaylistFetcher
	who       port.CurrentUserProvider
}

// compile-time check: *playlistsSrv must satisfy port.PlaylistProvider
var _ port.PlaylistProvider = (*playlistsSrv)(nil)

func NewPlaylists(playlists port.PlaylistFetcher, who port.CurrentUserProvider) port.PlaylistProvider {
	return &playlistsSrv{playlists, who}
}

func (s *playlistsSrv) Playlists(ctx context.Context) ([]model.Playlist, error) {
	userID := s.who.CurrentUser(ctx).ID
	lists, err := s.playlists.GetUserPlaylists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching playlists: %w", err)
	}
	return lists, nil
}

func (s *playlistsSrv) Playlist(ctx context.Context, id string) (*model.Playlist, error) {
	list, err := s.playlists.GetPlaylist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching playlist #%s: %w", id, err)
	}
	return list, nil
}
