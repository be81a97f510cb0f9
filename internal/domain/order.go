package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the status of a repair order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusInProgress OrderStatus = "in_progress"
	StatusDelayed    OrderStatus = "delayed"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// RepairOrder represents a guitar repair order in the system
type RepairOrder struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	GuitarBrand     *string
	GuitarModel     *string
	ProblemDesc     string
	AppointmentDate time.Time
	AppointmentTime string // slot label, e.g. "09:00-10:00"
	Status          OrderStatus
	Technician      *string
	AdminNotes      *string
	ImageKey        *string // opaque object key in the media store

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardsOccupancy returns true if the order occupies its slot.
// A cancelled slot is free again.
func (o *RepairOrder) CountsTowardsOccupancy() bool {
	return o.Status != StatusCancelled
}

// IsCancelled returns true if the order has been cancelled
func (o *RepairOrder) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// CanBeCancelled returns true if the order can still be cancelled
func (o *RepairOrder) CanBeCancelled() bool {
	return o.Status != StatusCancelled && o.Status != StatusCompleted
}

// CanBeDeleted returns true if the order can be physically removed.
// Only cancelled orders are deletable from the admin dashboard.
func (o *RepairOrder) CanBeDeleted() bool {
	return o.Status == StatusCancelled
}

// OrderFilter filter for listing repair orders
type OrderFilter struct {
	StartDate        *time.Time   // start of appointment-date period (optional)
	EndDate          *time.Time   // end of appointment-date period (optional)
	Status           *OrderStatus // exact status (optional)
	IncludeCancelled bool         // include cancelled orders in the result
}
