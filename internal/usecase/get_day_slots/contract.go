package get_day_slots

import (
	"context"
	"time"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// OrderRepository repair order repository interface
type OrderRepository interface {
	GetWithFilter(ctx context.Context, filter domain.OrderFilter) ([]*domain.RepairOrder, error)
}

// TimeProvider interface for obtaining the current time (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
