package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"smartcv/analyzer/internal/models"
)

type SessionRepository interface {
	Create(session *models.Session) error
	FindByID(id uuid.UUID) (*models.Session, error)
}

// sessionRepository keeps sessions in memory for the lifetime of the
// process. Each session is written once at creation and only read
// afterwards; the mutex guards the map, not the sessions.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*models.Session),
	}
}

// Create implements SessionRepository.
func (r *sessionRepository) Create(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}

	r.sessions[session.ID] = session
	return nil
}

// FindByID implements SessionRepository.
func (r *sessionRepository) FindByID(id uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session not found")
	}

	return session, nil
}
