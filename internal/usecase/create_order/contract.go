package create_order

import (
	"context"
	"time"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// OrderRepository repair order repository interface
type OrderRepository interface {
	Create(ctx context.Context, o *domain.RepairOrder) (*domain.RepairOrder, error)
	GetWithFilter(ctx context.Context, filter domain.OrderFilter) ([]*domain.RepairOrder, error)
}

// TransactionManager interface for running serializable transactions
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
