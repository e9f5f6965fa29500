// Package session keeps live exam sessions between stateless round trips.
// The host holds a session id and the registry resolves it to the latest
// session value; nothing survives a process restart.
package session

import (
	"sync"

	"github.com/Carlo1027/first-chatbot/internal/exam"

	"github.com/google/uuid"
)

// Registry is an in-memory session map keyed by session id. The mutex guards
// the map only; each session is exclusively owned by one interaction flow
// and is never mutated concurrently.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*exam.Session
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*exam.Session)}
}

// Create registers a fresh NotStarted session and returns its id.
func (r *Registry) Create() (string, *exam.Session) {
	id := uuid.NewString()
	sess := exam.NewSession()
	r.mu.Lock()
	r.sessions[id] = sess
	r.mu.Unlock()
	return id, sess
}

// Get returns the session with the given id, if registered.
func (r *Registry) Get(id string) (*exam.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[id]
	return sess, ok
}

// Delete discards the session with the given id.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
