package get_month_occupancy

import (
	getMonthOccupancy "github.com/fretworks/repairshop-service/internal/usecase/get_month_occupancy"
)

// MonthOccupancyResponse HTTP response of the monthly calendar view.
// Days with zero bookings are absent; the calendar renders them as idle.
type MonthOccupancyResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  map[string]DaySummary `json:"days"`
}

// DaySummary occupancy of one day
type DaySummary struct {
	Date      string     `json:"date"`
	Total     int        `json:"total"`
	Tier      string     `json:"tier"`
	TierLabel string     `json:"tierLabel"`
	Slots     []SlotLoad `json:"slots"`
}

// SlotLoad load of one slot within a day
type SlotLoad struct {
	Slot      string `json:"slot"`
	Count     int    `json:"count"`
	Tier      string `json:"tier"`
	TierLabel string `json:"tierLabel"`
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(resp *getMonthOccupancy.Response) *MonthOccupancyResponse {
	days := make(map[string]DaySummary, len(resp.Days))
	for date, day := range resp.Days {
		slots := make([]SlotLoad, len(day.Slots))
		for i, s := range day.Slots {
			slots[i] = SlotLoad{
				Slot:      s.Slot,
				Count:     s.Count,
				Tier:      string(s.Tier),
				TierLabel: s.TierLabel,
			}
		}
		days[date] = DaySummary{
			Date:      day.Date,
			Total:     day.Total,
			Tier:      string(day.Tier),
			TierLabel: day.TierLabel,
			Slots:     slots,
		}
	}

	return &MonthOccupancyResponse{
		Year:  resp.Year,
		Month: int(resp.Month),
		Days:  days,
	}
}
