package model

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned by SessionRepository.Load when no session
// exists under the given ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists one Session per conversation. The dialogue
// engine itself never touches storage; the hosting layer loads a session,
// runs a step and saves the result back.
type SessionRepository interface {
	// Save stores the full session state, refreshing its TTL.
	Save(ctx context.Context, session *Session) error

	// Load retrieves the session for the given ID, or ErrSessionNotFound.
	Load(ctx context.Context, id string) (*Session, error)

	// Delete removes the session wholesale. Deleting a missing session is
	// not an error.
	Delete(ctx context.Context, id string) error
}
