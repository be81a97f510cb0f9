package get_order

import (
	"time"

	"github.com/fretworks/repairshop-service/internal/service/orders/models"
)

// OrderResponse HTTP representation of a repair order for the admin card
type OrderResponse struct {
	OrderID         string    `json:"orderId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	GuitarBrand     *string   `json:"guitarBrand,omitempty"`
	GuitarModel     *string   `json:"guitarModel,omitempty"`
	ProblemDesc     string    `json:"problemDescription"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"statusLabel"`
	Technician      *string   `json:"technician,omitempty"`
	AdminNotes      *string   `json:"adminNotes,omitempty"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromServiceResponse converts the service result into the HTTP response
func FromServiceResponse(o *models.OrderResponse) *OrderResponse {
	return &OrderResponse{
		OrderID:         o.ID.String(),
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		GuitarBrand:     o.GuitarBrand,
		GuitarModel:     o.GuitarModel,
		ProblemDesc:     o.ProblemDesc,
		AppointmentDate: o.AppointmentDate,
		AppointmentTime: o.AppointmentTime,
		Status:          string(o.Status),
		StatusLabel:     o.StatusLabel,
		Technician:      o.Technician,
		AdminNotes:      o.AdminNotes,
		ImageURL:        o.ImageURL,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
