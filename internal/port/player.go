package port

import (
	"io"
	"time"
)

// Player is a media player backend. Implementations own exactly one loaded
// stream at a time; Load replaces it.
type Player interface {
	// Load takes ownership of src and prepares it for playback.
	Load(src io.ReadCloser) error
	Play() error
	Pause() error
	Stop() error
	SeekTo(pos time.Duration) error
	Position() time.Duration
	Duration() time.Duration
	IsPlaying() bool
	// SetLoop makes subsequently loaded streams repeat indefinitely.
	SetLoop(loop bool)
	Close() error
}
