package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is anything the repository can hold. Sessions live only as long
// as the page view that created them, so nothing here touches disk.
type Session interface {
	ID() uuid.UUID
	LastActive() time.Time
}

type SessionRepository[T Session] interface {
	Create(session T) error
	FindByID(id uuid.UUID) (T, error)
	Delete(id uuid.UUID) error
	DeleteIdle(before time.Time) []uuid.UUID
	Count() int
}

type sessionRepository[T Session] struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]T
}

func NewSessionRepository[T Session]() SessionRepository[T] {
	return &sessionRepository[T]{sessions: make(map[uuid.UUID]T)}
}

// Create implements SessionRepository.
func (r *sessionRepository[T]) Create(session T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := session.ID()
	if _, exists := r.sessions[id]; exists {
		return fmt.Errorf("failed to create session: %s already exists", id)
	}
	r.sessions[id] = session
	return nil
}

// FindByID implements SessionRepository.
func (r *sessionRepository[T]) FindByID(id uuid.UUID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("failed to find session %s: %w", id, ErrSessionNotFound)
	}
	return session, nil
}

// Delete implements SessionRepository.
func (r *sessionRepository[T]) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("failed to delete session %s: %w", id, ErrSessionNotFound)
	}
	delete(r.sessions, id)
	return nil
}

// DeleteIdle removes every session last active before the cutoff and
// returns their IDs.
func (r *sessionRepository[T]) DeleteIdle(before time.Time) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []uuid.UUID
	for id, session := range r.sessions {
		if session.LastActive().Before(before) {
			delete(r.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed
}

// Count implements SessionRepository.
func (r *sessionRepository[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
