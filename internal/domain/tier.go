package domain

// OccupancyTier is a three-level classification of how full a day or a
// single slot is. Two independent threshold tables exist: one for whole-day
// totals and one for single-slot counts. They are intentionally separate;
// using the day table for slot counts (or vice versa) is a correctness bug,
// not a stylistic choice.
type OccupancyTier string

const (
	TierIdle   OccupancyTier = "idle"
	TierNormal OccupancyTier = "normal"
	TierBusy   OccupancyTier = "busy"
)

// Day-level thresholds (monthly calendar, totals across the whole day)
const (
	dayBusyAbove   = 6 // total > 6  -> busy
	dayNormalFloor = 4 // total >= 4 -> normal
)

// Slot-level thresholds (per-slot detail, counts within one hour)
const (
	slotBusyFloor   = 4 // count >= 4 -> busy
	slotNormalFloor = 2 // count >= 2 -> normal
)

// DayTier classifies a whole-day booking total
func DayTier(total int) OccupancyTier {
	switch {
	case total > dayBusyAbove:
		return TierBusy
	case total >= dayNormalFloor:
		return TierNormal
	default:
		return TierIdle
	}
}

// SlotTier classifies a single-slot booking count
func SlotTier(count int) OccupancyTier {
	switch {
	case count >= slotBusyFloor:
		return TierBusy
	case count >= slotNormalFloor:
		return TierNormal
	default:
		return TierIdle
	}
}

// Label returns the fixed display label shown next to a tier
func (t OccupancyTier) Label() string {
	switch t {
	case TierBusy:
		return "繁忙"
	case TierNormal:
		return "一般"
	default:
		return "空闲"
	}
}
