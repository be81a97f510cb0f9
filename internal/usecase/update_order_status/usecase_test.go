package update_order_status

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretworks/repairshop-service/internal/domain"
	orderRepo "github.com/fretworks/repairshop-service/internal/infra/storage/order"
)

type stubRepo struct {
	order     *domain.RepairOrder
	getErr    error
	updateErr error

	updatedTo *domain.OrderStatus
}

func (s *stubRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.RepairOrder, error) {
	return s.order, s.getErr
}

func (s *stubRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status domain.OrderStatus, _ *string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedTo = &status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seededTracker() *InMemoryTracker {
	tracker := NewInMemoryTracker()
	tracker.Seed(domain.StatusDistribution{Pending: 2, Active: 1, Completed: 0, Total: 3})
	return tracker
}

func TestExecute_ConfirmedUpdate(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{order: &domain.RepairOrder{ID: id, Status: domain.StatusPending}}
	tracker := seededTracker()
	uc := NewUseCase(repo, tracker, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{OrderID: id, Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, domain.TransitionConfirmed, resp.State)
	assert.Equal(t, domain.StatusConfirmed, resp.Displayed)
	assert.Equal(t, domain.StatusPending, resp.Previous)
	require.NotNil(t, repo.updatedTo)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedTo)

	// only the lightweight aggregate moved
	assert.Equal(t, domain.StatusDistribution{Pending: 1, Active: 2, Completed: 0, Total: 3}, resp.Distribution)
}

func TestExecute_FailedWriteRollsBack(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{
		order:     &domain.RepairOrder{ID: id, Status: domain.StatusPending},
		updateErr: errors.New("connection reset"),
	}
	tracker := seededTracker()
	uc := NewUseCase(repo, tracker, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{OrderID: id, Status: "confirmed"})

	// the error is surfaced and names the prior status as the displayed one
	require.ErrorIs(t, err, ErrUpdateFailed)
	assert.Contains(t, err.Error(), "remains pending")

	// the optimistic shift was reverted
	assert.Equal(t, domain.StatusDistribution{Pending: 2, Active: 1, Completed: 0, Total: 3}, tracker.Snapshot())
}

func TestExecute_InvalidStatusRejected(t *testing.T) {
	uc := NewUseCase(&stubRepo{}, seededTracker(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{OrderID: uuid.New(), Status: "repaired"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_SameStatusIsNoop(t *testing.T) {
	id := uuid.New()
	repo := &stubRepo{order: &domain.RepairOrder{ID: id, Status: domain.StatusPending}}
	tracker := seededTracker()
	uc := NewUseCase(repo, tracker, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{OrderID: id, Status: "pending"})

	assert.ErrorIs(t, err, ErrSameStatus)
	assert.Nil(t, repo.updatedTo)
	assert.Equal(t, domain.StatusDistribution{Pending: 2, Active: 1, Completed: 0, Total: 3}, tracker.Snapshot())
}

func TestExecute_OrderNotFound(t *testing.T) {
	repo := &stubRepo{getErr: orderRepo.ErrOrderNotFound}
	uc := NewUseCase(repo, seededTracker(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{OrderID: uuid.New(), Status: "confirmed"})

	assert.ErrorIs(t, err, ErrOrderNotFound)
}
