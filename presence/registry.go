// Package presence tracks which users are reachable. Online/offline is
// derived state: a user is online iff they hold at least one active
// session, regardless of how many devices are connected.
package presence

import (
	"fmt"
	"sync"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
)

type Set map[domain.ConnectionID]struct{}

// Registry holds the session back-references. All mutations run under one
// mutex, which linearizes add/remove per user: a rapid
// reconnect can never produce a spurious double transition.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.ConnectionID]domain.Session
	byUser   map[domain.UserID]Set
}

var _ contract.IPresence = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.ConnectionID]domain.Session),
		byUser:   make(map[domain.UserID]Set),
	}
}

// AddSession registers a session and reports TransitionOnline only when it
// is the user's first active one, so fan-out stays idempotent per boundary.
func (r *Registry) AddSession(s domain.Session) (contract.Transition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ConnectionID]; ok {
		return contract.TransitionNone, fmt.Errorf("connection %s already registered: %w", s.ConnectionID, errors.ErrTransport)
	}
	r.sessions[s.ConnectionID] = s

	conns, ok := r.byUser[s.UserID]
	if !ok {
		conns = make(Set)
		r.byUser[s.UserID] = conns
	}
	conns[s.ConnectionID] = struct{}{}

	if len(conns) == 1 {
		return contract.TransitionOnline, nil
	}
	return contract.TransitionNone, nil
}

// RemoveSession is symmetric: TransitionOffline only when the last session
// for that user goes away. Removal is synchronous with session teardown,
// there is no orphan window.
func (r *Registry) RemoveSession(connID domain.ConnectionID) (domain.Session, contract.Transition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connID]
	if !ok {
		return domain.Session{}, contract.TransitionNone, fmt.Errorf("connection %s not registered: %w", connID, errors.ErrNotFound)
	}
	delete(r.sessions, connID)

	conns := r.byUser[s.UserID]
	delete(conns, connID)

	// No empty sets left behind to avoid leaking users over time
	if len(conns) == 0 {
		delete(r.byUser, s.UserID)
		return s, contract.TransitionOffline, nil
	}
	return s, contract.TransitionNone, nil
}

func (r *Registry) IsOnline(userID domain.UserID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]) > 0
}

// ActiveSessionsOf returns a snapshot copy, callers never see concurrent
// mutations of the underlying set.
func (r *Registry) ActiveSessionsOf(userID domain.UserID) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.byUser[userID]
	if len(conns) == 0 {
		return nil
	}
	out := make([]domain.ConnectionID, 0, len(conns))
	for c := range conns {
		out = append(out, c)
	}
	return out
}

// SessionOf resolves the back-reference for one connection.
func (r *Registry) SessionOf(connID domain.ConnectionID) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[connID]
	return s, ok
}
