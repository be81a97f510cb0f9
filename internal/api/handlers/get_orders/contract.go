package get_orders

import (
	"context"

	"github.com/fretworks/repairshop-service/internal/service/orders/models"
)

type OrdersService interface {
	List(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
