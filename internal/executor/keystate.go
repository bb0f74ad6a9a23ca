package executor

import (
	"sync"

	"github.com/genricoloni/clickloop/internal/domain"
)

// pressTracker remembers which watched inputs are held, for backends that
// only deliver press/release events instead of a pollable state.
type pressTracker struct {
	mu   sync.RWMutex
	down map[domain.Key]bool
}

func newPressTracker() *pressTracker {
	return &pressTracker{down: make(map[domain.Key]bool)}
}

// Update records a press (down=true) or release of key
func (t *pressTracker) Update(key domain.Key, down bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if down {
		t.down[key] = true
	} else {
		delete(t.down, key)
	}
}

// IsDown implements domain.KeyState
func (t *pressTracker) IsDown(key domain.Key) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.down[key], nil
}

// Reset forgets every held input, e.g. after the event stream restarted
func (t *pressTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.down = make(map[domain.Key]bool)
}
