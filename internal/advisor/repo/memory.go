package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vat-advisor-poc/server/internal/advisor/model"
)

// MemorySessionRepository is an in-process store for tests and for running
// the advisor without Redis. Sessions are stored as JSON so loads return
// independent copies, matching the Redis repository's semantics.
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string][]byte)}
}

func (r *MemorySessionRepository) Save(_ context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session has no ID")
	}
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = b
	return nil
}

func (r *MemorySessionRepository) Load(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	b, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	var s model.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

var _ model.SessionRepository = (*MemorySessionRepository)(nil)
