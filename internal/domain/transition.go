package domain

import (
	"errors"

	"github.com/google/uuid"
)

// TransitionState state of an optimistic status change
type TransitionState string

const (
	// TransitionApplied the new status is shown but the write is not yet confirmed
	TransitionApplied TransitionState = "applied"
	// TransitionConfirmed the write succeeded; the optimistic value stays
	TransitionConfirmed TransitionState = "confirmed"
	// TransitionRolledBack the write failed; the prior status is shown again
	TransitionRolledBack TransitionState = "rolled_back"
)

// ErrTransitionSettled is returned when confirming or rolling back a
// transition that has already left the applied state.
var ErrTransitionSettled = errors.New("status transition already settled")

// StatusTransition models an optimistic status update on a single order:
// the new status is applied to the displayed representation immediately,
// the store write happens asynchronously, and the transition is then either
// confirmed or rolled back. Keeping this as an explicit value makes the
// rollback path testable on its own.
type StatusTransition struct {
	OrderID uuid.UUID
	From    OrderStatus
	To      OrderStatus
	State   TransitionState
}

// NewStatusTransition applies the new status optimistically
func NewStatusTransition(orderID uuid.UUID, from, to OrderStatus) *StatusTransition {
	return &StatusTransition{
		OrderID: orderID,
		From:    from,
		To:      to,
		State:   TransitionApplied,
	}
}

// Confirm settles the transition after a successful store write
func (t *StatusTransition) Confirm() error {
	if t.State != TransitionApplied {
		return ErrTransitionSettled
	}
	t.State = TransitionConfirmed
	return nil
}

// Rollback reverts the transition after a failed store write
func (t *StatusTransition) Rollback() error {
	if t.State != TransitionApplied {
		return ErrTransitionSettled
	}
	t.State = TransitionRolledBack
	return nil
}

// Displayed returns the status the caller should present for the order:
// the optimistic value while applied or confirmed, the prior value after
// a rollback.
func (t *StatusTransition) Displayed() OrderStatus {
	if t.State == TransitionRolledBack {
		return t.From
	}
	return t.To
}
