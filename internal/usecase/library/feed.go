package library

import (
	"context"
	"fmt"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

type feedSrv struct {
	feed port.FeedFetcher
	who  port.CurrentUserProvider
}

// compile-time check: *feedSrv must satisfy port.FeedProvider
var _ port.FeedProvider = (*feedSrv)(nil)

func NewFeed(feed port.FeedFetcher, who port.CurrentUserProvider) port.FeedProvider {
	return &feedSrv{feed, who}
}

func (s *feedSrv) Stories(ctx context.Context) ([]model.Story, error) {
	userID := s.who.CurrentUser(ctx).ID
	stories, err := s.feed.GetStories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching stories: %w", err)
	}
	return stories, nil
}

func (s *feedSrv) Followers(ctx context.Context) ([]model.Follower, error) {
	userID := s.who.CurrentUser(ctx).ID
	followers, err := s.feed.GetFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching followers: %w", err)
	}
	return followers, nil
}
