package settings

import (
	"sync"

	"github.com/google/uuid"
)

// notifier fans out the two zero-argument broadcast signals: "updated" after
// every mutation, load, or reset, and "reset" only on an explicit reset.
// Firing with zero subscribers is a no-op, not an error.
type notifier struct {
	mu      sync.RWMutex
	updated map[uuid.UUID]func()
	reset   map[uuid.UUID]func()
}

// OnUpdated registers fn to run synchronously after every settings change.
// The returned handle unsubscribes via Unsubscribe.
func (n *notifier) OnUpdated(fn func()) uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.updated == nil {
		n.updated = make(map[uuid.UUID]func())
	}
	id := uuid.New()
	n.updated[id] = fn
	return id
}

// OnReset registers fn to run when settings are explicitly reset to defaults.
func (n *notifier) OnReset(fn func()) uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.reset == nil {
		n.reset = make(map[uuid.UUID]func())
	}
	id := uuid.New()
	n.reset[id] = fn
	return id
}

// Unsubscribe removes a subscription from whichever signal holds it.
func (n *notifier) Unsubscribe(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.updated, id)
	delete(n.reset, id)
}

func (n *notifier) fireUpdated() {
	n.mu.RLock()
	fns := make([]func(), 0, len(n.updated))
	for _, fn := range n.updated {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

func (n *notifier) fireReset() {
	n.mu.RLock()
	fns := make([]func(), 0, len(n.reset))
	for _, fn := range n.reset {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
