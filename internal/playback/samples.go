package playback

import (
	"context"
	"log"
	"sync"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

// SampleStatus is a point-in-time snapshot of the samples coordinator.
type SampleStatus struct {
	Current    *model.Short `json:"current,omitempty"`
	IsPlaying  bool         `json:"is_playing"`
	PositionMs int64        `json:"position_ms"`
	DurationMs int64        `json:"duration_ms"`
}

// SamplesCoordinator drives the short-form feed player. Samples loop until
// the next one is requested, and each played sample is cached in the
// background for the next visit.
type SamplesCoordinator struct {
	player port.Player
	opener port.MediaOpener
	focus  *Arbiter

	mu      sync.Mutex
	current *model.Short
}

const samplesFocusName = "samples"

func NewSamplesCoordinator(player port.Player, opener port.MediaOpener, focus *Arbiter) *SamplesCoordinator {
	c := &SamplesCoordinator{player: player, opener: opener, focus: focus}
	player.SetLoop(true)
	focus.Register(samplesFocusName, func() { _ = c.Pause() })
	return c
}

// Play loads a short and starts it looping. SHORT_VIDEO items play their
// video stream, everything else the audio stream; a short with no media
// URL is dropped silently.
func (c *SamplesCoordinator) Play(ctx context.Context, short model.Short) error {
	url := short.MediaURL()
	if url == "" {
		log.Printf("short #%s has no media url, ignoring play request", short.ID)
		return nil
	}
	cat := port.CategoryAudio
	if short.IsVideo() {
		cat = port.CategoryVideo
	}

	// acquire focus before taking c.mu: the pause callback locks it
	c.focus.Acquire(samplesFocusName)

	c.mu.Lock()
	defer c.mu.Unlock()

	log.Printf("loading sample #%s...", short.ID)
	rc, err := c.opener.Open(ctx, cat, url)
	if err != nil {
		return err
	}
	if err := c.player.Load(rc); err != nil {
		rc.Close()
		return err
	}
	if err := c.player.Play(); err != nil {
		return err
	}
	c.current = &short

	// warm the cache for the next visit without holding up playback;
	// EnsureCached no-ops when the blob is already on disk
	go func() {
		if err := c.opener.EnsureCached(context.Background(), cat, url); err != nil {
			log.Printf("⚠️  background caching of %q failed: %v", url, err)
		}
	}()
	return nil
}

func (c *SamplesCoordinator) TogglePlayPause() error {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return nil
	}
	if c.player.IsPlaying() {
		c.mu.Unlock()
		return c.Pause()
	}
	c.mu.Unlock()

	c.focus.Acquire(samplesFocusName)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player.Play()
}

func (c *SamplesCoordinator) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player.Pause()
}

func (c *SamplesCoordinator) Status() SampleStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	return SampleStatus{
		Current:    c.current,
		IsPlaying:  c.player.IsPlaying(),
		PositionMs: c.player.Position().Milliseconds(),
		DurationMs: c.player.Duration().Milliseconds(),
	}
}

func (c *SamplesCoordinator) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player.Close()
}
