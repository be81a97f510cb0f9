package get_day_slots

import (
	"github.com/fretworks/repairshop-service/internal/domain"
	getDaySlots "github.com/fretworks/repairshop-service/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response of the slot picker
type DaySlotsResponse struct {
	Date    string     `json:"date"`
	Workday bool       `json:"workday"`
	Slots   []SlotLoad `json:"slots"`
}

// SlotLoad load of a single slot
type SlotLoad struct {
	Slot      string `json:"slot"`
	Count     int    `json:"count"`
	Tier      string `json:"tier"`
	TierLabel string `json:"tierLabel"`
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotLoad, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotLoad{
			Slot:      s.Slot,
			Count:     s.Count,
			Tier:      string(s.Tier),
			TierLabel: s.TierLabel,
		}
	}

	return &DaySlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Workday: resp.Workday,
		Slots:   slots,
	}
}
