package app

import (
	"sync"
	"time"
)

type entry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Manager maps session ids to their controllers. Each browser session gets
// one controller for its lifetime; state is never shared between sessions
// and resets on process restart. Entries idle longer than the session
// cookie's lifetime are reclaimed by Prune.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry
	factory func() *Controller
	now     func() time.Time
}

// NewManager creates a manager that builds controllers with the given
// factory.
func NewManager(factory func() *Controller) *Manager {
	return &Manager{
		entries: make(map[string]*entry),
		factory: factory,
		now:     time.Now,
	}
}

// Get returns the controller for a session, creating it on first use and
// refreshing its idle timer.
func (m *Manager) Get(sessionID string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[sessionID]; ok {
		e.lastSeen = m.now()
		return e.ctrl
	}
	e := &entry{ctrl: m.factory(), lastSeen: m.now()}
	m.entries[sessionID] = e
	return e.ctrl
}

// Drop discards a session's controller, e.g. on logout.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
}

// Prune removes controllers not touched within ttl and reports how many
// were removed. Their session cookies have expired by then, so the ids can
// no longer reach them.
func (m *Manager) Prune(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-ttl)
	removed := 0
	for id, e := range m.entries {
		if e.lastSeen.Before(cutoff) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}
