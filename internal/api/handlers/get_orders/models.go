package get_orders

import (
	"fmt"
	"net/url"
	"time"

	"github.com/fretworks/repairshop-service/internal/domain"
	"github.com/fretworks/repairshop-service/internal/service/orders/models"
)

// OrderItem HTTP representation of one order in the admin list
type OrderItem struct {
	OrderID         string  `json:"orderId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	GuitarBrand     *string `json:"guitarBrand,omitempty"`
	GuitarModel     *string `json:"guitarModel,omitempty"`
	ProblemDesc     string  `json:"problemDescription"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	Status          string  `json:"status"`
	StatusLabel     string  `json:"statusLabel"`
}

// OrderListResponse HTTP response of the admin order list
type OrderListResponse struct {
	Orders []OrderItem `json:"orders"`
	Total  int         `json:"total"`
}

// ParseListQuery reads the list filters from query parameters.
// Supported: start_date, end_date (YYYY-MM-DD), status, include_cancelled.
func ParseListQuery(query url.Values) (*models.ListOrdersRequest, error) {
	req := &models.ListOrdersRequest{}

	if v := query.Get("start_date"); v != "" {
		t, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date %q: %w", v, err)
		}
		req.StartDate = &t
	}

	if v := query.Get("end_date"); v != "" {
		t, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date %q: %w", v, err)
		}
		req.EndDate = &t
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	req.IncludeCancelled = query.Get("include_cancelled") == "true"

	return req, nil
}

// FromServiceResponse converts the service result into the HTTP response
func FromServiceResponse(resp *models.OrderListResponse) *OrderListResponse {
	items := make([]OrderItem, len(resp.Orders))
	for i, o := range resp.Orders {
		items[i] = OrderItem{
			OrderID:         o.ID.String(),
			CustomerName:    o.CustomerName,
			CustomerPhone:   o.CustomerPhone,
			GuitarBrand:     o.GuitarBrand,
			GuitarModel:     o.GuitarModel,
			ProblemDesc:     o.ProblemDesc,
			AppointmentDate: o.AppointmentDate,
			AppointmentTime: o.AppointmentTime,
			Status:          string(o.Status),
			StatusLabel:     o.StatusLabel,
		}
	}

	return &OrderListResponse{Orders: items, Total: resp.Total}
}
