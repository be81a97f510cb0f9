package create_order

import (
	"time"

	"github.com/google/uuid"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// Request booking form submission
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	GuitarBrand   *string
	GuitarModel   *string
	ProblemDesc   string
	Date          time.Time // appointment date, no time component
	Slot          string    // slot label from the public catalog
	ImageKey      *string   // optional reference to an uploaded image
}

// Response result of creating a repair order
type Response struct {
	OrderID  uuid.UUID
	Status   domain.OrderStatus
	Date     time.Time
	Slot     string
	SlotTier domain.OccupancyTier // load of the chosen slot including this order
}
