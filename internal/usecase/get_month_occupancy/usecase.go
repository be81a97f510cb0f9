package get_month_occupancy

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// UseCase use case for the admin calendar's monthly occupancy view
type UseCase struct {
	orderRepo OrderRepository
	catalog   domain.SlotCatalog
	logger    Logger
}

// NewUseCase creates the use case. The admin calendar passes
// domain.AdminCatalog; its slot detail is laid out over that catalog's
// ranges, with any labels outside it (legacy rows, admin overrides)
// appended so existing bookings never disappear from the view.
func NewUseCase(orderRepo OrderRepository, catalog domain.SlotCatalog, logger Logger) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		catalog:   catalog,
		logger:    logger,
	}
}

// Execute aggregates the month's non-cancelled orders into per-day and
// per-slot occupancy. Weekend bookings are counted like any other; the
// workday predicate only gates the public slot picker.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthOccupancy: year=%d, month=%d", req.Year, req.Month)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthOccupancy: validation failed: %v", err)
		return nil, err
	}

	firstDay := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	orders, err := uc.orderRepo.GetWithFilter(ctx, domain.OrderFilter{
		StartDate: &firstDay,
		EndDate:   &lastDay,
	})
	if err != nil {
		uc.logger.Error("GetMonthOccupancy: failed to get orders: %v", err)
		return nil, fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	days, skipped := domain.AggregateMonth(orders, req.Year, req.Month)
	for _, o := range skipped {
		uc.logger.Warn("GetMonthOccupancy: order id=%s has malformed slot label %q, excluded from counts",
			o.ID, o.AppointmentTime)
	}

	resp := &Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  make(map[string]*DaySummary, len(days)),
	}
	for date, day := range days {
		tier := domain.DayTier(day.Total)
		resp.Days[date] = &DaySummary{
			Date:      date,
			Total:     day.Total,
			Tier:      tier,
			TierLabel: tier.Label(),
			Slots:     uc.slotLoads(day),
		}
	}

	uc.logger.Info("GetMonthOccupancy: %d days with bookings in %d-%02d (%d orders)",
		len(resp.Days), req.Year, req.Month, len(orders))
	return resp, nil
}

// slotLoads lists the catalog's slots in order, then any off-catalog
// labels seen in the data, sorted for stable output.
func (uc *UseCase) slotLoads(day *domain.DayOccupancy) []SlotLoad {
	labels := uc.catalog.Slots()
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		seen[label] = true
	}

	extras := make([]string, 0)
	for label := range day.BySlot {
		if !seen[label] {
			extras = append(extras, label)
		}
	}
	sort.Strings(extras)
	labels = append(labels, extras...)

	loads := make([]SlotLoad, len(labels))
	for i, label := range labels {
		count := day.BySlot[label]
		tier := domain.SlotTier(count)
		loads[i] = SlotLoad{
			Slot:      label,
			Count:     count,
			Tier:      tier,
			TierLabel: tier.Label(),
		}
	}
	return loads
}

func validateRequest(req *Request) error {
	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: invalid month", ErrInvalidInput)
	}
	return nil
}
