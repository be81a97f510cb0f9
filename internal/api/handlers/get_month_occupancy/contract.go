package get_month_occupancy

import (
	"context"

	getMonthOccupancy "github.com/fretworks/repairshop-service/internal/usecase/get_month_occupancy"
)

type GetMonthOccupancyUseCase interface {
	Execute(ctx context.Context, req *getMonthOccupancy.Request) (*getMonthOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
