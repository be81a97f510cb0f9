package update_order_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/fretworks/repairshop-service/internal/domain"
	orderRepo "github.com/fretworks/repairshop-service/internal/infra/storage/order"
	"github.com/fretworks/repairshop-service/internal/service/orders/models"
)

// UseCase use case for the admin dashboard's quick status change.
//
// The change is applied optimistically: the dashboard counters shift to
// the new status before the store write settles. On write failure the
// transition is rolled back, the counters shift back, and the error is
// surfaced with the prior status. On success only those counters are
// touched; the monthly calendar keeps its possibly stale view until the
// next explicit reload.
type UseCase struct {
	orderRepo OrderRepository
	tracker   DistributionTracker
	logger    Logger
}

// NewUseCase creates the use case
func NewUseCase(orderRepo OrderRepository, tracker DistributionTracker, logger Logger) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		tracker:   tracker,
		logger:    logger,
	}
}

// Execute performs the optimistic status update
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateOrderStatus: order=%s, status=%s", req.OrderID, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		uc.logger.Warn("UpdateOrderStatus: invalid status %q for order=%s", req.Status, req.OrderID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	current, err := uc.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			uc.logger.Warn("UpdateOrderStatus: order=%s not found", req.OrderID)
			return nil, ErrOrderNotFound
		}
		uc.logger.Error("UpdateOrderStatus: repository error for order=%s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: failed to get order: %v", ErrInternal, err)
	}

	if current.Status == newStatus {
		return nil, ErrSameStatus
	}

	// Apply optimistically before the write settles.
	transition := domain.NewStatusTransition(req.OrderID, current.Status, newStatus)
	uc.tracker.Shift(transition.From, transition.To)

	if err := uc.orderRepo.UpdateStatus(ctx, req.OrderID, newStatus, req.AdminNotes); err != nil {
		// Revert: the prior status is displayed again.
		uc.tracker.Shift(transition.To, transition.From)
		_ = transition.Rollback()

		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			uc.logger.Warn("UpdateOrderStatus: order=%s disappeared during update", req.OrderID)
			return nil, ErrOrderNotFound
		}
		uc.logger.Error("UpdateOrderStatus: write failed for order=%s, rolled back to %s: %v",
			req.OrderID, transition.Displayed(), err)
		return nil, fmt.Errorf("%w: order=%s remains %s: %v",
			ErrUpdateFailed, req.OrderID, transition.Displayed(), err)
	}

	_ = transition.Confirm()
	uc.logger.Info("UpdateOrderStatus: order=%s now %s (was %s)",
		req.OrderID, transition.Displayed(), transition.From)

	return &Response{
		OrderID:      req.OrderID,
		Displayed:    transition.Displayed(),
		Previous:     transition.From,
		State:        transition.State,
		Distribution: uc.tracker.Snapshot(),
	}, nil
}
