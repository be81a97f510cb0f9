package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/fretworks/repairshop-service/internal/domain"
)

// OrderRepository repair order repository interface
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RepairOrder, error)
	GetWithFilter(ctx context.Context, filter domain.OrderFilter) ([]*domain.RepairOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, adminNotes *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MediaStoreClient media store client interface
type MediaStoreClient interface {
	ResolveImageURL(ctx context.Context, objectKey string) *string
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
