package api_context

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	SongIDKey     ctxKey = "songID"
	PlaylistIDKey ctxKey = "playlistID"
	CategoryKey   ctxKey = "category"
	AuthUserIDKey ctxKey = "authUserID"
)

func SongIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SongIDKey).(string)
	return id, ok
}

func PlaylistIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(PlaylistIDKey).(string)
	return id, ok
}

func CategoryFromContext(ctx context.Context) (string, bool) {
	c, ok := ctx.Value(CategoryKey).(string)
	return c, ok
}

func AuthUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(uuid.UUID)
	return id, ok
}
