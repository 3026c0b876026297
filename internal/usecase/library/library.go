package library

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

// Service holds the in-memory song listing for the active user. Reload
// refetches it from the backend; a failed fetch keeps the previous snapshot.
type Service struct {
	songs port.SongLister
	rater port.SongRater
	who   port.CurrentUserProvider

	mu       sync.RWMutex
	snapshot []model.Song
	loaded   bool
}

// compile-time check: *Service must satisfy port.Library
var _ port.Library = (*Service)(nil)

func NewService(songs port.SongLister, rater port.SongRater, who port.CurrentUserProvider) *Service {
	return &Service{songs: songs, rater: rater, who: who}
}

// Songs returns the current listing, loading it on first use.
func (s *Service) Songs(ctx context.Context) []model.Song {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.Reload(ctx); err != nil {
			log.Printf("⚠️  could not load the song library: %v", err)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Song, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

func (s *Service) Liked(ctx context.Context) []model.Song {
	return s.filter(ctx, func(song model.Song) bool { return song.IsLiked })
}

func (s *Service) Disliked(ctx context.Context) []model.Song {
	return s.filter(ctx, func(song model.Song) bool { return song.IsDisliked })
}

func (s *Service) filter(ctx context.Context, keep func(model.Song) bool) []model.Song {
	var out []model.Song
	for _, song := range s.Songs(ctx) {
		if keep(song) {
			out = append(out, song)
		}
	}
	return out
}

// Reload refetches the listing from the backend. On failure the previous
// snapshot stays in place and the error is returned.
func (s *Service) Reload(ctx context.Context) error {
	userID := s.who.CurrentUser(ctx).ID
	log.Printf("reloading the song library for user #%s...", userID)

	songs, err := s.songs.GetSongs(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetching songs: %w", err)
	}

	s.mu.Lock()
	s.snapshot = songs
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Rate submits a like or dislike, then reloads so the listing reflects the
// new counts. Failures are logged and swallowed; the listing stays as it was.
func (s *Service) Rate(ctx context.Context, songID string, kind port.RatingKind) {
	userID := s.who.CurrentUser(ctx).ID

	var err error
	switch kind {
	case port.RatingLike:
		err = s.rater.LikeSong(ctx, songID, userID)
	case port.RatingDislike:
		err = s.rater.DislikeSong(ctx, songID, userID)
	default:
		log.Printf("⚠️  unknown rating kind %q for song #%s", kind, songID)
		return
	}
	if err != nil {
		log.Printf("⚠️  could not %s song #%s: %v", kind, songID, err)
		return
	}

	if err := s.Reload(ctx); err != nil {
		log.Printf("⚠️  rating saved but reload failed: %v", err)
	}
}

func (s *Service) Song(ctx context.Context, songID string) (model.Song, bool) {
	for _, song := range s.Songs(ctx) {
		if song.ID == songID {
			return song, true
		}
	}
	return model.Song{}, false
}
