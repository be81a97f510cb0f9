package create_order

import (
	"time"

	"github.com/fretworks/repairshop-service/internal/domain"
	createOrder "github.com/fretworks/repairshop-service/internal/usecase/create_order"
)

// CreateOrderRequest HTTP request body of the booking form
type CreateOrderRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	GuitarBrand     *string `json:"guitarBrand,omitempty"`
	GuitarModel     *string `json:"guitarModel,omitempty"`
	ProblemDesc     string  `json:"problemDescription"`
	AppointmentDate string  `json:"appointmentDate"` // YYYY-MM-DD
	AppointmentTime string  `json:"appointmentTime"` // slot label
	ImageKey        *string `json:"imageKey,omitempty"`
}

// CreateOrderResponse HTTP response body
type CreateOrderResponse struct {
	OrderID         string `json:"orderId"`
	Status          string `json:"status"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	SlotTier        string `json:"slotTier"`
	SlotTierLabel   string `json:"slotTierLabel"`
}

// ToUseCaseRequest parses the HTTP body into a use case request
func (r *CreateOrderRequest) ToUseCaseRequest() (*createOrder.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	return &createOrder.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		GuitarBrand:   r.GuitarBrand,
		GuitarModel:   r.GuitarModel,
		ProblemDesc:   r.ProblemDesc,
		Date:          date,
		Slot:          r.AppointmentTime,
		ImageKey:      r.ImageKey,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *CreateOrderResponse {
	return &CreateOrderResponse{
		OrderID:         resp.OrderID.String(),
		Status:          string(resp.Status),
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		AppointmentTime: resp.Slot,
		SlotTier:        string(resp.SlotTier),
		SlotTierLabel:   resp.SlotTier.Label(),
	}
}
