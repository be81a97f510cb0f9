package create_order

import (
	"context"
	"fmt"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// UseCase use case for submitting the public booking form
type UseCase struct {
	orderRepo    OrderRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(orderRepo OrderRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates a pending repair order for the requested date and slot.
// The read of the day's existing orders and the insert run in one
// serializable transaction so the slot tier reported back to the customer
// reflects the order set this booking actually joined.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: customer=%s, date=%s, slot=%s",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.Slot)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateAppointment(req, now); err != nil {
		uc.logger.Warn("CreateOrder: appointment validation failed: %v", err)
		return nil, err
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.orderRepo.GetWithFilter(txCtx, domain.OrderFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get existing orders: %v", ErrInternal, err)
		}

		created, err := uc.orderRepo.Create(txCtx, &domain.RepairOrder{
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			GuitarBrand:     req.GuitarBrand,
			GuitarModel:     req.GuitarModel,
			ProblemDesc:     req.ProblemDesc,
			AppointmentDate: req.Date,
			AppointmentTime: req.Slot,
			Status:          domain.StatusPending,
			ImageKey:        req.ImageKey,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}

		day, _ := domain.AggregateDay(existing, req.Date)
		slotCount := day.BySlot[req.Slot] + 1 // including the order just created

		resp = &Response{
			OrderID:  created.ID,
			Status:   created.Status,
			Date:     req.Date,
			Slot:     req.Slot,
			SlotTier: domain.SlotTier(slotCount),
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateOrder: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateOrder: created order id=%s, slot tier=%s", resp.OrderID, resp.SlotTier)
	return resp, nil
}
