package get_month_occupancy

import (
	"time"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// Request monthly calendar query
type Request struct {
	Year  int
	Month time.Month
}

// Response day-by-day occupancy for the month. Days with zero bookings
// are absent from the map; the calendar renders absent days as idle.
type Response struct {
	Year  int
	Month time.Month
	Days  map[string]*DaySummary
}

// DaySummary occupancy of one calendar day
type DaySummary struct {
	Date      string
	Total     int
	Tier      domain.OccupancyTier // day-level thresholds
	TierLabel string
	Slots     []SlotLoad
}

// SlotLoad booking load of one slot within a day
type SlotLoad struct {
	Slot      string
	Count     int
	Tier      domain.OccupancyTier // slot-level thresholds
	TierLabel string
}
