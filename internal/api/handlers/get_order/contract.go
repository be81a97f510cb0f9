package get_order

import (
	"context"

	"github.com/google/uuid"

	"github.com/fretworks/repairshop-service/internal/service/orders/models"
)

type OrdersService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
