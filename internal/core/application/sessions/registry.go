// Package sessions holds the in-memory registry of active workflow sessions.
// A session lives in memory for the duration of the planning workflow; only
// saved drafts and committed batches reach the database.
package sessions

import (
	"errors"
	"sync"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/session"
)

// ErrSessionNotFound is returned when no active session exists for the given
// identifier. The session may have expired or was never created.
var ErrSessionNotFound = errors.New("session not found")

// Registry stores active workflow sessions keyed by identity. It is safe for
// concurrent use by multiple request handlers.
type Registry struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*session.WorkflowSession
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[kernel.UUID]*session.WorkflowSession),
	}
}

// Create starts a new workflow session and registers it.
func (r *Registry) Create() (*session.WorkflowSession, error) {
	sess, err := session.NewWorkflowSession(kernel.NewUUID())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID()] = sess
	return sess, nil
}

// Put registers an externally built session, replacing any session already
// stored under the same identity. Resume uses it to register the session
// rebuilt from a draft.
func (r *Registry) Put(sess *session.WorkflowSession) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID()] = sess
	return nil
}

// Get returns the active session with the given identity.
func (r *Registry) Get(id kernel.UUID) (*session.WorkflowSession, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Remove drops the session with the given identity. Removing an unknown
// session is a no-op.
func (r *Registry) Remove(id kernel.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of active sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
