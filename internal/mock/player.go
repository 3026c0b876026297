package mock

import (
	"io"
	"sync"
	"time"
)

// Player records every call for playback tests. Position advances only when
// the test sets it explicitly.
type Player struct {
	mu sync.Mutex

	// errors
	LoadErr  error
	PlayErr  error
	PauseErr error
	SeekErr  error

	// state
	Loaded    io.ReadCloser
	LoadCount int
	Playing   bool
	Stopped   bool
	Looping   bool
	Pos       time.Duration
	Dur       time.Duration
	SeekedTo  time.Duration

	// call flags
	PlayCalled  bool
	PauseCalled bool
	StopCalled  bool
	SeekCalled  bool
	CloseCalled bool
}

func (p *Player) Load(src io.ReadCloser) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.LoadErr != nil {
		return p.LoadErr
	}
	if p.Loaded != nil {
		p.Loaded.Close()
	}
	p.Loaded = src
	p.LoadCount++
	p.Playing = false
	p.Pos = 0
	return nil
}

func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.PlayCalled = true
	if p.PlayErr != nil {
		return p.PlayErr
	}
	p.Playing = true
	p.Stopped = false
	return nil
}

func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.PauseCalled = true
	if p.PauseErr != nil {
		return p.PauseErr
	}
	p.Playing = false
	return nil
}

func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.StopCalled = true
	p.Playing = false
	p.Stopped = true
	p.Pos = 0
	return nil
}

func (p *Player) SeekTo(pos time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.SeekCalled = true
	if p.SeekErr != nil {
		return p.SeekErr
	}
	p.SeekedTo = pos
	p.Pos = pos
	return nil
}

func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Pos
}

func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Dur
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Playing
}

func (p *Player) SetLoop(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Looping = loop
}

func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.CloseCalled = true
	if p.Loaded != nil {
		p.Loaded.Close()
		p.Loaded = nil
	}
	p.Playing = false
	return nil
}

// SetPosition lets tests simulate playback progress.
func (p *Player) SetPosition(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Pos = pos
}
