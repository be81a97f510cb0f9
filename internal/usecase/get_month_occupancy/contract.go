package get_month_occupancy

import (
	"context"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// OrderRepository repair order repository interface
type OrderRepository interface {
	GetWithFilter(ctx context.Context, filter domain.OrderFilter) ([]*domain.RepairOrder, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
