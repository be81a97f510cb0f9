package update_order_status

import (
	"github.com/google/uuid"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// Request admin quick status change
type Request struct {
	OrderID    uuid.UUID
	Status     string
	AdminNotes *string
}

// Response result of a settled status transition
type Response struct {
	OrderID      uuid.UUID
	Displayed    domain.OrderStatus // status the dashboard should show
	Previous     domain.OrderStatus
	State        domain.TransitionState
	Distribution domain.StatusDistribution // updated dashboard counters
}
