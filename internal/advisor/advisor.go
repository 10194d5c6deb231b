// Package advisor is the process-level surface of the deduction chatbot: it
// owns session persistence and delegates each utterance to the dialogue
// engine. The presentation layer calls HandleMessage/Reset and renders the
// returned transcript delta and snapshot.
package advisor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vat-advisor-poc/server/internal/advisor/dialogue"
	"github.com/vat-advisor-poc/server/internal/advisor/model"
	logx "github.com/vat-advisor-poc/server/pkg/logger"
)

type Advisor struct {
	sessions model.SessionRepository
	engine   *dialogue.Engine
}

func New(sessions model.SessionRepository, classifier model.Classifier) *Advisor {
	return &Advisor{
		sessions: sessions,
		engine:   dialogue.New(classifier),
	}
}

// Turn is the result of one interaction: the session ID (minted on first
// contact), the transcript entries to render and the display snapshot.
type Turn struct {
	SessionID string
	Messages  []model.Message
	Snapshot  model.Snapshot
}

// HandleMessage runs one utterance against the stored session, creating a
// fresh greeted session when none exists. A fresh session's delta includes
// the greeting so the caller renders the opening question too.
func (a *Advisor) HandleMessage(ctx context.Context, sessionID, text string) (*Turn, error) {
	session, fresh, err := a.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var greeting []model.Message
	if fresh {
		greeting = append(greeting, session.Transcript...)
	}

	delta, err := a.engine.HandleUtterance(ctx, session, text)
	if err != nil {
		return nil, err
	}

	if err := a.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	logx.Debug().
		Str("session_id", session.ID).
		Str("step", string(session.Step)).
		Int("messages", len(delta)).
		Msg("utterance handled")

	return &Turn{
		SessionID: session.ID,
		Messages:  append(greeting, delta...),
		Snapshot:  session.Snapshot(),
	}, nil
}

// Reset destroys any stored state for the session and returns a fresh one,
// greeting included. Resetting an unknown or empty session ID simply starts
// a new conversation.
func (a *Advisor) Reset(ctx context.Context, sessionID string) (*Turn, error) {
	if sessionID != "" {
		if err := a.sessions.Delete(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	session := dialogue.NewSession()
	session.ID = uuid.NewString()
	if err := a.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	logx.Debug().Str("session_id", session.ID).Msg("session reset")

	return &Turn{
		SessionID: session.ID,
		Messages:  append([]model.Message(nil), session.Transcript...),
		Snapshot:  session.Snapshot(),
	}, nil
}

// Snapshot returns the display projection of a stored session.
func (a *Advisor) Snapshot(ctx context.Context, sessionID string) (model.Snapshot, error) {
	session, err := a.sessions.Load(ctx, sessionID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (a *Advisor) loadOrCreate(ctx context.Context, sessionID string) (*model.Session, bool, error) {
	if sessionID == "" {
		session := dialogue.NewSession()
		session.ID = uuid.NewString()
		return session, true, nil
	}

	session, err := a.sessions.Load(ctx, sessionID)
	if err == nil {
		return session, false, nil
	}
	if errors.Is(err, model.ErrSessionNotFound) {
		session = dialogue.NewSession()
		session.ID = sessionID
		return session, true, nil
	}
	return nil, false, err
}
