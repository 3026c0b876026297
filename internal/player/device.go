package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// device serializes access to beep's process-global speaker. It remembers
// the active sample rate and which ctrl currently sits on the mixer, so
// that two players sharing the one output keep a single consistent view:
// when one of them clears the mixer, the other re-attaches before resuming.
type device struct {
	mu       sync.Mutex
	ready    bool
	rate     beep.SampleRate
	attached *beep.Ctrl

	init  func(beep.SampleRate, int) error
	close func()
	clear func()
	play  func(...beep.Streamer)
}

// spk is the single speaker shared by every BeepPlayer in the process.
var spk = newDevice()

func newDevice() *device {
	return &device{
		init:  speaker.Init,
		close: speaker.Close,
		clear: speaker.Clear,
		play:  func(s ...beep.Streamer) { speaker.Play(s...) },
	}
}

// prepare makes sure the speaker runs at rate, reinitializing it when the
// rate changes. Reinit empties the mixer, so the attached ctrl is forgotten.
func (d *device) prepare(rate beep.SampleRate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ready && d.rate == rate {
		return nil
	}
	if d.ready {
		d.close()
		// the device needs a moment to release
		time.Sleep(100 * time.Millisecond)
	}
	if err := d.init(rate, rate.N(time.Second/10)); err != nil {
		d.ready = false
		d.attached = nil
		return fmt.Errorf("initializing speaker at %d Hz: %w", rate, err)
	}
	d.ready = true
	d.rate = rate
	d.attached = nil
	return nil
}

// attach makes ctrl the only streamer on the mixer.
func (d *device) attach(ctrl *beep.Ctrl) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clear()
	d.play(ctrl)
	d.attached = ctrl
}

// ensureAttached puts ctrl back on the mixer if another player cleared it
// since the last attach. A no-op when ctrl is already the attached one.
func (d *device) ensureAttached(ctrl *beep.Ctrl) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.ready || d.attached == ctrl {
		return
	}
	d.clear()
	d.play(ctrl)
	d.attached = ctrl
}

// detach empties the mixer, but only when ctrl is the one attached; a ctrl
// already displaced by another player must not clear that player's stream.
func (d *device) detach(ctrl *beep.Ctrl) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.ready || d.attached != ctrl {
		return
	}
	d.clear()
	d.attached = nil
}
