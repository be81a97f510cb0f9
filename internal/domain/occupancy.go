package domain

import "time"

// DayOccupancy per-day occupancy derived from the current order set.
// It is rebuilt on every query and never persisted; Total always equals
// the sum of the BySlot values.
type DayOccupancy struct {
	Date   string // YYYY-MM-DD
	Total  int
	BySlot map[string]int
}

// AggregateMonth groups non-cancelled orders of the given calendar month
// by appointment date and slot. Days without any order are absent from the
// result; callers must treat absence as a zero count.
//
// Orders with a missing or shape-invalid appointment time are excluded
// from the counts and returned on the second list so the caller can log
// them, instead of being grouped under the bad literal key.
func AggregateMonth(orders []*RepairOrder, year int, month time.Month) (map[string]*DayOccupancy, []*RepairOrder) {
	days := make(map[string]*DayOccupancy)
	skipped := make([]*RepairOrder, 0)

	for _, order := range orders {
		if !order.CountsTowardsOccupancy() {
			continue
		}
		if order.AppointmentDate.Year() != year || order.AppointmentDate.Month() != month {
			continue
		}
		if !IsWellFormedSlotLabel(order.AppointmentTime) {
			skipped = append(skipped, order)
			continue
		}

		date := order.AppointmentDate.Format(DateFormat)
		day, ok := days[date]
		if !ok {
			day = &DayOccupancy{Date: date, BySlot: make(map[string]int)}
			days[date] = day
		}
		day.Total++
		day.BySlot[order.AppointmentTime]++
	}

	return days, skipped
}

// AggregateDay is AggregateMonth restricted to a single date. Used by the
// slot picker to show per-slot load for the date the customer is selecting.
// Always returns a non-nil DayOccupancy, zero-valued when the day is empty.
func AggregateDay(orders []*RepairOrder, date time.Time) (*DayOccupancy, []*RepairOrder) {
	dateStr := date.Format(DateFormat)
	day := &DayOccupancy{Date: dateStr, BySlot: make(map[string]int)}
	skipped := make([]*RepairOrder, 0)

	for _, order := range orders {
		if !order.CountsTowardsOccupancy() {
			continue
		}
		if order.AppointmentDate.Format(DateFormat) != dateStr {
			continue
		}
		if !IsWellFormedSlotLabel(order.AppointmentTime) {
			skipped = append(skipped, order)
			continue
		}

		day.Total++
		day.BySlot[order.AppointmentTime]++
	}

	return day, skipped
}
