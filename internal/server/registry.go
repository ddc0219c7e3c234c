package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeffreywbertke/DC/internal/practice"
)

// Registry holds live API sessions in memory.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

type entry struct {
	session  *practice.Session
	lastSeen time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Add stores session under a new ID and returns the ID.
func (r *Registry) Add(session *practice.Session) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &entry{session: session, lastSeen: r.now()}
	return id
}

// Get returns the session for id and marks it as used.
func (r *Registry) Get(id string) (*practice.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.session, true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Expire removes sessions untouched for longer than ttl and returns their IDs.
func (r *Registry) Expire(ttl time.Duration) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-ttl)
	var expired []string
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			expired = append(expired, id)
		}
	}
	return expired
}
