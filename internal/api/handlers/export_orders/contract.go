package export_orders

import (
	"context"

	"github.com/fretworks/repairshop-service/internal/service/orders/models"
)

type OrdersService interface {
	ExportCSV(ctx context.Context, req *models.ListOrdersRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
