package advisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vat-advisor-poc/server/internal/advisor/classify"
	"github.com/vat-advisor-poc/server/internal/advisor/model"
	"github.com/vat-advisor-poc/server/internal/advisor/repo"
)

func newAdvisor() *Advisor {
	return New(repo.NewMemorySessionRepository(), classify.NewLocal())
}

func TestHandleMessageMintsSession(t *testing.T) {
	ctx := context.Background()
	adv := newAdvisor()

	turn, err := adv.HandleMessage(ctx, "", "제조업")
	require.NoError(t, err)
	require.NotEmpty(t, turn.SessionID)

	// a fresh conversation renders the greeting before the first exchange
	require.GreaterOrEqual(t, len(turn.Messages), 3)
	assert.Equal(t, model.RoleAssistant, turn.Messages[0].Role)
	assert.Equal(t, model.RoleUser, turn.Messages[1].Role)
	assert.Equal(t, "제조업", turn.Messages[1].Content)
	assert.Equal(t, model.StepAwaitVehicle, turn.Snapshot.Step)
}

func TestConversationPersistsAcrossCalls(t *testing.T) {
	ctx := context.Background()
	adv := newAdvisor()

	turn, err := adv.HandleMessage(ctx, "", "제조업")
	require.NoError(t, err)
	id := turn.SessionID

	turn, err = adv.HandleMessage(ctx, id, "스타렉스")
	require.NoError(t, err)
	assert.Equal(t, id, turn.SessionID)
	assert.Equal(t, model.StepAwaitSeats, turn.Snapshot.Step)
	assert.Equal(t, "스타렉스", turn.Snapshot.VehicleText)
	assert.Contains(t, turn.Snapshot.Tags, model.TagVan)

	turn, err = adv.HandleMessage(ctx, id, "9")
	require.NoError(t, err)
	assert.Equal(t, model.StepDone, turn.Snapshot.Step)
	require.NotNil(t, turn.Snapshot.SeatCount)
	assert.Equal(t, 9, *turn.Snapshot.SeatCount)
}

func TestResetStartsOver(t *testing.T) {
	ctx := context.Background()
	adv := newAdvisor()

	turn, err := adv.HandleMessage(ctx, "", "제조업")
	require.NoError(t, err)
	oldID := turn.SessionID

	reset, err := adv.Reset(ctx, oldID)
	require.NoError(t, err)
	assert.NotEqual(t, oldID, reset.SessionID)
	assert.Equal(t, model.StepAwaitIndustry, reset.Snapshot.Step)
	assert.Empty(t, reset.Snapshot.Industry)
	require.Len(t, reset.Messages, 1) // greeting only
	assert.Equal(t, model.RoleAssistant, reset.Messages[0].Role)

	// the old session is gone
	_, err = adv.Snapshot(ctx, oldID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	// the next utterance continues the fresh conversation
	turn, err = adv.HandleMessage(ctx, reset.SessionID, "택시")
	require.NoError(t, err)
	assert.Equal(t, model.StepDone, turn.Snapshot.Step)
}

func TestUnknownSessionIDStartsFresh(t *testing.T) {
	ctx := context.Background()
	adv := newAdvisor()

	turn, err := adv.HandleMessage(ctx, "no-such-session", "택시")
	require.NoError(t, err)
	assert.Equal(t, "no-such-session", turn.SessionID)
	assert.Equal(t, model.StepDone, turn.Snapshot.Step)
}
