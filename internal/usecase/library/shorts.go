package library

import (
	"context"
	"fmt"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

type shortsSrv struct {
	shorts port.ShortLister
	who    port.CurrentUserProvider
}

// compile-time check: *shortsSrv must satisfy port.ShortsProvider
var _ port.ShortsProvider = (*shortsSrv)(nil)

func NewShorts(shorts port.ShortLister, who port.CurrentUserProvider) port.ShortsProvider {
	return &shortsSrv{shorts, who}
}

func (s *shortsSrv) Shorts(ctx context.Context) ([]model.Short, error) {
	userID := s.who.CurrentUser(ctx).ID
	shorts, err := s.shorts.GetShorts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching shorts: %w", err)
	}
	return shorts, nil
}

func (s *shortsSrv) Short(ctx context.Context, id string) (model.Short, bool) {
	shorts, err := s.Shorts(ctx)
	if err != nil {
		return model.Short{}, false
	}
	for _, sh := range shorts {
		if sh.ID == id {
			return sh, true
		}
	}
	return model.Short{}, false
}
