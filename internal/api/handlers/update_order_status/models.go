package update_order_status

import (
	"github.com/google/uuid"

	"github.com/fretworks/repairshop-service/internal/service/orders/models"
	updateOrderStatus "github.com/fretworks/repairshop-service/internal/usecase/update_order_status"
)

// UpdateStatusRequest HTTP request body of the quick status dropdown
type UpdateStatusRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// UpdateStatusResponse HTTP response body. Distribution carries the
// refreshed dashboard counters so the client needs no extra request.
type UpdateStatusResponse struct {
	OrderID      string       `json:"orderId"`
	Status       string       `json:"status"`
	StatusLabel  string       `json:"statusLabel"`
	Previous     string       `json:"previousStatus"`
	Distribution Distribution `json:"distribution"`
}

// Distribution status counters for the dashboard header
type Distribution struct {
	Pending   int `json:"pending"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// ToUseCaseRequest builds the use case request
func (r *UpdateStatusRequest) ToUseCaseRequest(orderID uuid.UUID) *updateOrderStatus.Request {
	return &updateOrderStatus.Request{
		OrderID:    orderID,
		Status:     r.Status,
		AdminNotes: r.AdminNotes,
	}
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(resp *updateOrderStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		OrderID:     resp.OrderID.String(),
		Status:      string(resp.Displayed),
		StatusLabel: models.StatusLabel(resp.Displayed),
		Previous:    string(resp.Previous),
		Distribution: Distribution{
			Pending:   resp.Distribution.Pending,
			Active:    resp.Distribution.Active,
			Completed: resp.Distribution.Completed,
			Total:     resp.Distribution.Total,
		},
	}
}
