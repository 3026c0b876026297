package playback

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

// Status is a point-in-time snapshot of a coordinator's state.
type Status struct {
	Current    *model.Song `json:"current,omitempty"`
	Index      int         `json:"index"`
	QueueSize  int         `json:"queue_size"`
	IsPlaying  bool        `json:"is_playing"`
	PositionMs int64       `json:"position_ms"`
	DurationMs int64       `json:"duration_ms"`
	Shuffle    bool        `json:"shuffle"`
}

// Coordinator owns the "now playing" state for full-length tracks: the
// queue, the current index, shuffle, and the position poll. All mutations
// go through its mutex; the underlying player is only touched while held.
type Coordinator struct {
	player port.Player
	opener port.MediaOpener
	focus  *Arbiter

	mu       sync.Mutex
	queue    []model.Song
	index    int
	shuffle  bool
	order    []int // permutation snapshot, only set while shuffle is on
	pos, dur time.Duration

	pollEvery  time.Duration
	pollCancel context.CancelFunc

	rand *rand.Rand
}

const trackFocusName = "tracks"

func NewCoordinator(player port.Player, opener port.MediaOpener, focus *Arbiter, pollEvery time.Duration) *Coordinator {
	c := &Coordinator{
		player:    player,
		opener:    opener,
		focus:     focus,
		index:     -1,
		pollEvery: pollEvery,
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	focus.Register(trackFocusName, func() { _ = c.Pause() })
	return c
}

// Play loads a song and starts playback. A supplied queue replaces the
// working one; otherwise the current queue is reused, appending the song
// if absent. A song with no audio URL is dropped silently.
func (c *Coordinator) Play(ctx context.Context, song model.Song, queue []model.Song) error {
	if !song.Playable() {
		log.Printf("song #%s has no audio url, ignoring play request", song.ID)
		return nil
	}

	// acquire focus before taking c.mu: the pause callback locks it
	c.focus.Acquire(trackFocusName)

	c.mu.Lock()
	defer c.mu.Unlock()

	if queue != nil {
		c.queue = queue
		if c.shuffle {
			// the old permutation indexes the replaced queue
			c.order = c.rand.Perm(len(c.queue))
		}
	}
	idx := c.findLocked(song.ID)
	if idx < 0 {
		c.queue = append(c.queue, song)
		idx = len(c.queue) - 1
	}
	c.index = idx
	if c.shuffle {
		// the permutation indexes the queue; extend it for appended items
		for len(c.order) < len(c.queue) {
			c.order = append(c.order, len(c.order))
		}
	}

	return c.loadAndPlayLocked(ctx, c.queue[idx])
}

func (c *Coordinator) findLocked(songID string) int {
	for i, s := range c.queue {
		if s.ID == songID {
			return i
		}
	}
	return -1
}

func (c *Coordinator) loadAndPlayLocked(ctx context.Context, song model.Song) error {
	log.Printf("loading song #%s (%q)...", song.ID, song.Title)

	rc, err := c.opener.Open(ctx, port.CategoryAudio, song.AudioURL)
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
	c.pos = 0
	c.dur = c.player.Duration()
	c.startPollLocked()
	return nil
}

// TogglePlayPause pauses when playing, resumes otherwise. With nothing
// loaded it is a no-op.
func (c *Coordinator) TogglePlayPause() error {
	c.mu.Lock()
	if c.index < 0 {
		c.mu.Unlock()
		return nil
	}
	if c.player.IsPlaying() {
		defer c.mu.Unlock()
		return c.pauseLocked()
	}
	c.mu.Unlock()

	c.focus.Acquire(trackFocusName)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.player.Play(); err != nil {
		return err
	}
	c.startPollLocked()
	return nil
}

func (c *Coordinator) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pauseLocked()
}

func (c *Coordinator) pauseLocked() error {
	c.stopPollLocked()
	return c.player.Pause()
}

// Next advances within the active queue view. At the last position it is a
// no-op: no wraparound.
func (c *Coordinator) Next(ctx context.Context) error {
	return c.step(ctx, +1)
}

// Previous retreats within the active queue view; a no-op at the first
// position.
func (c *Coordinator) Previous(ctx context.Context) error {
	return c.step(ctx, -1)
}

func (c *Coordinator) step(ctx context.Context, delta int) error {
	c.focus.Acquire(trackFocusName)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index < 0 || len(c.queue) == 0 {
		return nil
	}

	view := c.viewLocked()
	pos := -1
	for i, qi := range view {
		if qi == c.index {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil
	}

	next := pos + delta
	if next < 0 || next >= len(view) {
		return nil
	}

	c.index = view[next]
	return c.loadAndPlayLocked(ctx, c.queue[c.index])
}

// viewLocked returns the navigation order: the shuffle permutation when
// enabled, insertion order otherwise.
func (c *Coordinator) viewLocked() []int {
	if c.shuffle && len(c.order) > 0 {
		return c.order
	}
	view := make([]int, len(c.queue))
	for i := range view {
		view[i] = i
	}
	return view
}

func (c *Coordinator) SeekTo(pos time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.player.SeekTo(pos); err != nil {
		return err
	}
	c.pos = pos
	return nil
}

// ToggleShuffle flips the flag. Enabling snapshots one random permutation
// of the current queue; Play extends it for its own appended item and
// redraws it when it replaces the queue.
func (c *Coordinator) ToggleShuffle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shuffle = !c.shuffle
	if c.shuffle {
		c.order = c.rand.Perm(len(c.queue))
	} else {
		c.order = nil
	}
	return c.shuffle
}

func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{
		Index:      c.index,
		QueueSize:  len(c.queue),
		IsPlaying:  c.player.IsPlaying(),
		PositionMs: c.pos.Milliseconds(),
		DurationMs: c.dur.Milliseconds(),
		Shuffle:    c.shuffle,
	}
	if c.index >= 0 && c.index < len(c.queue) {
		song := c.queue[c.index]
		st.Current = &song
	}
	return st
}

// Close stops the poll and releases the player.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopPollLocked()
	return c.player.Close()
}

// startPollLocked launches the position poll. Only one poll runs at a time;
// it lives until pause, stop or Close cancels it.
func (c *Coordinator) startPollLocked() {
	c.stopPollLocked()

	ctx, cancel := context.WithCancel(context.Background())
	c.pollCancel = cancel

	go func() {
		ticker := time.NewTicker(c.pollEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.mu.Lock()
				c.pos = c.player.Position()
				c.dur = c.player.Duration()
				c.mu.Unlock()
			}
		}
	}()
}

func (c *Coordinator) stopPollLocked() {
	if c.pollCancel != nil {
		c.pollCancel()
		c.pollCancel = nil
	}
}
