package update_order_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// OrderRepository repair order repository interface
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RepairOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, adminNotes *string) error
}

// DistributionTracker the lightweight in-memory status aggregate the
// dashboard header displays. It is the only local state touched on a
// confirmed update; monthly occupancy stays stale until the next reload.
type DistributionTracker interface {
	Shift(from, to domain.OrderStatus)
	Snapshot() domain.StatusDistribution
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
