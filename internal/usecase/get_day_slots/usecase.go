package get_day_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// UseCase use case for the public booking form's slot picker
type UseCase struct {
	orderRepo    OrderRepository
	catalog      domain.SlotCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case. The public booking form passes
// domain.PublicCatalog.
func NewUseCase(orderRepo OrderRepository, catalog domain.SlotCatalog, logger Logger) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the per-slot load for the requested date. Weekends get
// an empty slot list with Workday=false; past dates are rejected.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetDaySlots: past date %s requested", req.Date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	if !uc.catalog.IsWorkday(req.Date) {
		uc.logger.Info("GetDaySlots: %s is not a workday, no slots offered", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Workday: false, Slots: []SlotLoad{}}, nil
	}

	orders, err := uc.orderRepo.GetWithFilter(ctx, domain.OrderFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get orders: %v", err)
		return nil, fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	day, skipped := domain.AggregateDay(orders, req.Date)
	for _, o := range skipped {
		uc.logger.Warn("GetDaySlots: order id=%s has malformed slot label %q, excluded from counts",
			o.ID, o.AppointmentTime)
	}

	labels := uc.catalog.Slots()
	slots := make([]SlotLoad, len(labels))
	for i, label := range labels {
		count := day.BySlot[label]
		tier := domain.SlotTier(count)
		slots[i] = SlotLoad{
			Slot:      label,
			Count:     count,
			Tier:      tier,
			TierLabel: tier.Label(),
		}
	}

	uc.logger.Info("GetDaySlots: %d slots for %s, day total=%d",
		len(slots), req.Date.Format(domain.DateFormat), day.Total)
	return &Response{Date: req.Date, Workday: true, Slots: slots}, nil
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
