package get_order_stats

import (
	"context"

	"github.com/fretworks/repairshop-service/internal/service/orders/models"
)

type OrdersService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
