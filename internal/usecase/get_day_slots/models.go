package get_day_slots

import (
	"time"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// Request slot picker query for a single date
type Request struct {
	Date time.Time
}

// Response per-slot load for the requested date. Workday is false on
// weekends, in which case no slots are offered regardless of occupancy.
type Response struct {
	Date    time.Time
	Workday bool
	Slots   []SlotLoad
}

// SlotLoad booking load of one slot
type SlotLoad struct {
	Slot      string
	Count     int
	Tier      domain.OccupancyTier
	TierLabel string
}
