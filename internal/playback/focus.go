package playback

import (
	"log"
	"sync"
)

// Arbiter grants audio focus to one holder at a time. Every coordinator
// registers a pause callback; acquiring focus pauses all other holders
// under the arbiter's lock, so two players are never audible together.
type Arbiter struct {
	mu      sync.Mutex
	holders map[string]func()
}

func NewArbiter() *Arbiter {
	return &Arbiter{holders: make(map[string]func())}
}

// Register adds a holder under a unique name. Re-registering the same name
// replaces the previous callback.
func (a *Arbiter) Register(name string, pause func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.holders[name] = pause
}

// Acquire pauses every holder except name. Callers invoke it right before
// starting playback.
func (a *Arbiter) Acquire(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for other, pause := range a.holders {
		if other == name {
			continue
		}
		log.Printf("audio focus to %q, pausing %q...", name, other)
		pause()
	}
}
