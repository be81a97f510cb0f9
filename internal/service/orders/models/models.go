package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// OrderResponse repair order representation returned by the service layer
type OrderResponse struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	GuitarBrand     *string
	GuitarModel     *string
	ProblemDesc     string
	AppointmentDate string
	AppointmentTime string
	Status          domain.OrderStatus
	StatusLabel     string
	Technician      *string
	AdminNotes      *string
	ImageURL        *string // resolved from the image key, nil when unavailable
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderListResponse a list of repair orders
type OrderListResponse struct {
	Orders []*OrderResponse
	Total  int
}

// ListOrdersRequest filter parameters for the admin order list
type ListOrdersRequest struct {
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter converts the request into a domain filter
func (r *ListOrdersRequest) ToDomainFilter() (domain.OrderFilter, error) {
	filter := domain.OrderFilter{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return domain.OrderFilter{}, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// StatsResponse status distribution for the dashboard header
type StatsResponse struct {
	Pending   int
	Active    int
	Completed int
	Total     int
}

// ToDomainStatus validates and converts a status string
func ToDomainStatus(s string) (domain.OrderStatus, error) {
	status := domain.OrderStatus(s)
	if !domain.IsValidStatus(status) {
		return "", fmt.Errorf("unknown order status: %s", s)
	}
	return status, nil
}

// StatusLabel returns the Chinese display label for a status
func StatusLabel(s domain.OrderStatus) string {
	switch s {
	case domain.StatusPending:
		return "待确认"
	case domain.StatusConfirmed:
		return "已确认"
	case domain.StatusInProgress:
		return "维修中"
	case domain.StatusDelayed:
		return "已延期"
	case domain.StatusCompleted:
		return "已完成"
	case domain.StatusCancelled:
		return "已取消"
	default:
		return string(s)
	}
}

// FromDomainOrder converts a domain order without resolving the image URL
func FromDomainOrder(o *domain.RepairOrder) *OrderResponse {
	return &OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		GuitarBrand:     o.GuitarBrand,
		GuitarModel:     o.GuitarModel,
		ProblemDesc:     o.ProblemDesc,
		AppointmentDate: o.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime: o.AppointmentTime,
		Status:          o.Status,
		StatusLabel:     StatusLabel(o.Status),
		Technician:      o.Technician,
		AdminNotes:      o.AdminNotes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// FromDomainOrderList converts a list of domain orders
func FromDomainOrderList(orders []*domain.RepairOrder) *OrderListResponse {
	result := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = FromDomainOrder(o)
	}
	return &OrderListResponse{Orders: result, Total: len(result)}
}
