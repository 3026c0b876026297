package player

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"

	"github.com/tunewave/tunewave-go/internal/port"
)

// BeepPlayer plays mp3 streams through the system speaker. One stream is
// loaded at a time; Load tears the previous one down. The speaker is a
// process-wide device shared through spk: loading or resuming re-attaches
// this player's ctrl, displacing whichever player held the mixer before.
type BeepPlayer struct {
	mu sync.Mutex

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	format   beep.Format

	isPlaying bool
	loop      bool
	duration  time.Duration
}

// compile-time check: *BeepPlayer must satisfy port.Player
var _ port.Player = (*BeepPlayer)(nil)

func NewBeep() *BeepPlayer {
	return &BeepPlayer{}
}

// Load decodes src as mp3 and hands it to the speaker, paused. The speaker
// is initialized lazily on the first load and reinitialized when the sample
// rate changes.
func (p *BeepPlayer) Load(src io.ReadCloser) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer != nil {
		spk.detach(p.ctrl)
		_ = p.streamer.Close()
		p.streamer = nil
		p.ctrl = nil
		p.volume = nil
		p.duration = 0
	}

	streamer, format, err := mp3.Decode(src)
	if err != nil {
		src.Close()
		return fmt.Errorf("decoding mp3 stream: %w", err)
	}

	if length := streamer.Len(); length > 0 {
		p.duration = format.SampleRate.D(length)
	}

	var base beep.Streamer = streamer
	if p.loop {
		base = beep.Loop(-1, streamer)
	}

	volume := &effects.Volume{
		Streamer: base,
		Base:     2,
		Volume:   0,
		Silent:   false,
	}
	ctrl := &beep.Ctrl{
		Streamer: volume,
		Paused:   true,
	}

	if err := spk.prepare(format.SampleRate); err != nil {
		_ = streamer.Close()
		return err
	}

	p.streamer = streamer
	p.ctrl = ctrl
	p.volume = volume
	p.format = format
	p.isPlaying = false

	spk.attach(ctrl)

	log.Printf("loaded mp3 stream, duration %v at %d Hz", p.duration, format.SampleRate)
	return nil
}

func (p *BeepPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return fmt.Errorf("no stream loaded")
	}

	// another player may have cleared the mixer since this stream loaded
	spk.ensureAttached(p.ctrl)

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.isPlaying = true
	return nil
}

func (p *BeepPlayer) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return nil
	}

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.isPlaying = false
	return nil
}

func (p *BeepPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return nil
	}

	spk.detach(p.ctrl)
	if err := p.streamer.Seek(0); err != nil {
		log.Printf("⚠️  could not rewind the stream: %v", err)
	}
	p.isPlaying = false
	return nil
}

// SeekTo clamps pos to the stream bounds and seeks. Streams decoded from a
// non-seekable source reject seeking; the error is returned as-is.
func (p *BeepPlayer) SeekTo(pos time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return fmt.Errorf("no stream loaded")
	}

	if pos < 0 {
		pos = 0
	}
	if p.duration > 0 && pos > p.duration {
		pos = p.duration
	}

	samplePos := p.format.SampleRate.N(pos)
	if length := p.streamer.Len(); length > 0 && samplePos >= length {
		samplePos = length - 1
	}

	speaker.Lock()
	defer speaker.Unlock()
	return p.streamer.Seek(samplePos)
}

func (p *BeepPlayer) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Position())
}

func (p *BeepPlayer) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

func (p *BeepPlayer) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return false
	}
	return p.isPlaying
}

func (p *BeepPlayer) SetLoop(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loop = loop
}

func (p *BeepPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl != nil {
		spk.detach(p.ctrl)
	}
	if p.streamer != nil {
		if err := p.streamer.Close(); err != nil {
			return err
		}
		p.streamer = nil
		p.ctrl = nil
		p.volume = nil
	}
	p.isPlaying = false
	return nil
}
