package player

import (
	"errors"
	"testing"

	"github.com/faiface/beep"
)

type speakerCalls struct {
	inits  []beep.SampleRate
	closes int
	clears int
	plays  []beep.Streamer
}

func newTestDevice(calls *speakerCalls, initErr error) *device {
	return &device{
		init: func(rate beep.SampleRate, _ int) error {
			if initErr != nil {
				return initErr
			}
			calls.inits = append(calls.inits, rate)
			return nil
		},
		close: func() { calls.closes++ },
		clear: func() { calls.clears++ },
		play:  func(s ...beep.Streamer) { calls.plays = append(calls.plays, s...) },
	}
}

func TestDevicePrepare_InitsOnceAndReinitsOnRateChange(t *testing.T) {
	calls := &speakerCalls{}
	d := newTestDevice(calls, nil)

	if err := d.prepare(44100); err != nil {
		t.Fatalf("prepare() returned unexpected error: %v", err)
	}
	if err := d.prepare(44100); err != nil {
		t.Fatalf("prepare() at same rate returned unexpected error: %v", err)
	}
	if len(calls.inits) != 1 {
		t.Fatalf("expected 1 init at the same rate, got %d", len(calls.inits))
	}

	if err := d.prepare(48000); err != nil {
		t.Fatalf("prepare() at new rate returned unexpected error: %v", err)
	}
	if calls.closes != 1 || len(calls.inits) != 2 {
		t.Errorf("rate change must close then reinit, got %d closes / %d inits", calls.closes, len(calls.inits))
	}
	if calls.inits[1] != 48000 {
		t.Errorf("reinit rate = %d, want 48000", calls.inits[1])
	}
}

func TestDevicePrepare_InitFailureLeavesDeviceUnready(t *testing.T) {
	calls := &speakerCalls{}
	d := newTestDevice(calls, errors.New("device busy"))

	if err := d.prepare(44100); err == nil {
		t.Fatal("expected an error when the speaker cannot initialize")
	}

	// an unready device must not touch the mixer
	d.ensureAttached(&beep.Ctrl{})
	if calls.clears != 0 || len(calls.plays) != 0 {
		t.Errorf("expected no mixer calls, got %d clears / %d plays", calls.clears, len(calls.plays))
	}
}

func TestDeviceEnsureAttached_ReattachesAfterDisplacement(t *testing.T) {
	calls := &speakerCalls{}
	d := newTestDevice(calls, nil)
	if err := d.prepare(44100); err != nil {
		t.Fatalf("prepare() returned unexpected error: %v", err)
	}

	tracks := &beep.Ctrl{}
	samples := &beep.Ctrl{}

	d.attach(tracks)
	d.ensureAttached(tracks)
	if len(calls.plays) != 1 {
		t.Fatalf("attached ctrl must not be re-played, got %d plays", len(calls.plays))
	}

	// the samples player takes the mixer, then the tracks player resumes
	d.attach(samples)
	d.ensureAttached(tracks)
	if len(calls.plays) != 3 {
		t.Fatalf("expected a re-attach play, got %d plays", len(calls.plays))
	}
	if calls.plays[2] != beep.Streamer(tracks) {
		t.Error("resume must put the displaced ctrl back on the mixer")
	}
}

func TestDeviceDetach_OnlyClearsOwnCtrl(t *testing.T) {
	calls := &speakerCalls{}
	d := newTestDevice(calls, nil)
	if err := d.prepare(44100); err != nil {
		t.Fatalf("prepare() returned unexpected error: %v", err)
	}

	tracks := &beep.Ctrl{}
	samples := &beep.Ctrl{}
	d.attach(tracks)
	clearsAfterAttach := calls.clears

	// a displaced ctrl must not wipe the current player's stream
	d.detach(samples)
	if calls.clears != clearsAfterAttach {
		t.Error("detaching a ctrl that is not attached must not clear the mixer")
	}
	d.ensureAttached(tracks)
	if len(calls.plays) != 1 {
		t.Error("the attached ctrl must survive a foreign detach")
	}

	d.detach(tracks)
	if calls.clears != clearsAfterAttach+1 {
		t.Error("detaching the attached ctrl must clear the mixer")
	}
	d.ensureAttached(tracks)
	if len(calls.plays) != 2 {
		t.Error("a detached ctrl must be re-attached on resume")
	}
}
