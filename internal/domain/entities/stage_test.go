package entities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStageProgress_Advance(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(2 * time.Hour)

	t.Run("start stamps started_at once", func(t *testing.T) {
		p := &OrderStageProgress{ID: "p-1", Status: StageStatusPendente}

		require.NoError(t, p.Advance(ctx, StageStatusEmAndamento, t0))
		require.NotNil(t, p.StartedAt)
		assert.Equal(t, t0, *p.StartedAt)
		assert.Equal(t, StageStatusEmAndamento, p.Status)

		require.NoError(t, p.Advance(ctx, StageStatusEmAndamento, t1))
		assert.Equal(t, t0, *p.StartedAt)

		require.NoError(t, p.Advance(ctx, StageStatusPendente, t1))
		require.NoError(t, p.Advance(ctx, StageStatusEmAndamento, t1))
		assert.Equal(t, t0, *p.StartedAt, "restart must keep the original start")
	})

	t.Run("complete backfills started_at", func(t *testing.T) {
		p := &OrderStageProgress{ID: "p-2", Status: StageStatusPendente}

		require.NoError(t, p.Advance(ctx, StageStatusConcluido, t1))
		require.NotNil(t, p.StartedAt)
		require.NotNil(t, p.CompletedAt)
		assert.Equal(t, t1, *p.StartedAt)
		assert.Equal(t, t1, *p.CompletedAt)
		assert.Equal(t, StageStatusConcluido, p.Status)
		assert.Equal(t, t1, p.UpdatedAt)
	})

	t.Run("complete keeps existing start", func(t *testing.T) {
		started := t0
		p := &OrderStageProgress{ID: "p-3", Status: StageStatusEmAndamento, StartedAt: &started}

		require.NoError(t, p.Advance(ctx, StageStatusConcluido, t1))
		assert.Equal(t, t0, *p.StartedAt)
		assert.Equal(t, t1, *p.CompletedAt)
	})

	t.Run("reopen clears completed_at", func(t *testing.T) {
		p := &OrderStageProgress{ID: "p-4", Status: StageStatusPendente}
		require.NoError(t, p.Advance(ctx, StageStatusConcluido, t0))

		require.NoError(t, p.Advance(ctx, StageStatusEmAndamento, t1))
		assert.Nil(t, p.CompletedAt)
		assert.Equal(t, t0, *p.StartedAt)
	})

	t.Run("invalid target", func(t *testing.T) {
		p := &OrderStageProgress{ID: "p-5", Status: StageStatusPendente}
		assert.ErrorIs(t, p.Advance(ctx, StageStatus("em-andamento"), t0), ErrInvalidStatus)
	})

	t.Run("unknown current status", func(t *testing.T) {
		p := &OrderStageProgress{ID: "p-6", Status: StageStatus("pausado")}
		assert.ErrorIs(t, p.Advance(ctx, StageStatusConcluido, t0), ErrInvalidTransition)
	})
}

func TestAllStagesDone(t *testing.T) {
	assert.False(t, AllStagesDone(nil))
	assert.False(t, AllStagesDone([]OrderStageProgress{
		{Status: StageStatusConcluido},
		{Status: StageStatusEmAndamento},
	}))
	assert.True(t, AllStagesDone([]OrderStageProgress{
		{Status: StageStatusConcluido},
		{Status: StageStatusConcluido},
	}))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStageStatus(" em_andamento ")
	require.NoError(t, err)
	assert.Equal(t, StageStatusEmAndamento, s)

	_, err = ParseStageStatus("em-andamento")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	o, err := ParseOrderStatus("entregue")
	require.NoError(t, err)
	assert.True(t, o.IsFinal())
	assert.False(t, o.IsActive())

	_, err = ParseOrderStatus("done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
