package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vat-advisor-poc/server/internal/advisor/model"
)

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewMemorySessionRepository()

	s := &model.Session{ID: "s-1", Step: model.StepAwaitVehicle, Industry: "제조업"}
	s.Append(model.RoleAssistant, "hello")
	require.NoError(t, r.Save(ctx, s))

	loaded, err := r.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, s.Step, loaded.Step)
	assert.Equal(t, s.Industry, loaded.Industry)
	require.Len(t, loaded.Transcript, 1)

	// loads return independent copies
	loaded.Industry = "변조"
	again, err := r.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "제조업", again.Industry)

	require.NoError(t, r.Delete(ctx, "s-1"))
	_, err = r.Load(ctx, "s-1")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestMemoryRepositoryRejectsAnonymousSession(t *testing.T) {
	r := NewMemorySessionRepository()
	err := r.Save(context.Background(), &model.Session{})
	assert.Error(t, err)
}
