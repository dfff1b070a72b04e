package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	flows    *Flows
	lastSeen time.Time
}

// Manager owns the per-visitor flow bundles, keyed by session id. Sessions
// idle longer than the TTL are reclaimed by SweepIdle.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry
	factory Factory
	ttl     time.Duration
	now     func() time.Time
}

func NewManager(factory Factory, ttl time.Duration) *Manager {
	return &Manager{
		entries: make(map[string]*entry),
		factory: factory,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Acquire returns the flows for the given session id, minting a new session
// when the id is empty or unknown. The returned id is the one the caller
// should hand back to the visitor.
func (m *Manager) Acquire(id string) (string, *Flows) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if e, ok := m.entries[id]; ok {
			e.lastSeen = m.now()
			return id, e.flows
		}
	}

	id = uuid.NewString()
	m.entries[id] = &entry{flows: m.factory(), lastSeen: m.now()}
	return id, m.entries[id].flows
}

// SweepIdle drops sessions idle past the TTL and returns their ids.
func (m *Manager) SweepIdle(ctx context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	var expired []string
	for id, e := range m.entries {
		if ctx.Err() != nil {
			break
		}
		if e.lastSeen.Before(cutoff) {
			delete(m.entries, id)
			expired = append(expired, id)
		}
	}
	return expired
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
