package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransition_OptimisticApply(t *testing.T) {
	tr := NewStatusTransition(uuid.New(), StatusPending, StatusConfirmed)

	// the new value is displayed before the write settles
	assert.Equal(t, TransitionApplied, tr.State)
	assert.Equal(t, StatusConfirmed, tr.Displayed())
}

func TestStatusTransition_ConfirmKeepsOptimisticValue(t *testing.T) {
	tr := NewStatusTransition(uuid.New(), StatusPending, StatusConfirmed)

	require.NoError(t, tr.Confirm())
	assert.Equal(t, TransitionConfirmed, tr.State)
	assert.Equal(t, StatusConfirmed, tr.Displayed())
}

func TestStatusTransition_RollbackRestoresPriorStatus(t *testing.T) {
	tr := NewStatusTransition(uuid.New(), StatusInProgress, StatusCompleted)

	require.NoError(t, tr.Rollback())
	assert.Equal(t, TransitionRolledBack, tr.State)
	assert.Equal(t, StatusInProgress, tr.Displayed())
}

func TestStatusTransition_CannotSettleTwice(t *testing.T) {
	tr := NewStatusTransition(uuid.New(), StatusPending, StatusConfirmed)
	require.NoError(t, tr.Confirm())

	assert.ErrorIs(t, tr.Rollback(), ErrTransitionSettled)
	assert.ErrorIs(t, tr.Confirm(), ErrTransitionSettled)
}

func TestStatusDistribution_Shift(t *testing.T) {
	orders := []*RepairOrder{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusConfirmed},
		{Status: StatusInProgress},
		{Status: StatusDelayed},
		{Status: StatusCompleted},
		{Status: StatusCancelled},
	}

	d := DistributionOf(orders)
	assert.Equal(t, StatusDistribution{Pending: 2, Active: 3, Completed: 1, Total: 7}, d)

	// confirmed update: pending -> in_progress
	d.Shift(StatusPending, StatusInProgress)
	assert.Equal(t, StatusDistribution{Pending: 1, Active: 4, Completed: 1, Total: 7}, d)

	// cancelling leaves only Total-relevant buckets
	d.Shift(StatusConfirmed, StatusCancelled)
	assert.Equal(t, StatusDistribution{Pending: 1, Active: 3, Completed: 1, Total: 7}, d)
}
