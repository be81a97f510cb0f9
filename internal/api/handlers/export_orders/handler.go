package export_orders

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fretworks/repairshop-service/internal/api/handlers"
	getOrders "github.com/fretworks/repairshop-service/internal/api/handlers/get_orders"
	"github.com/fretworks/repairshop-service/internal/service/orders"
)

const (
	msgInvalidQuery  = "查询参数不正确"
	msgInvalidStatus = "未知的订单状态"
)

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/export
//
// Accepts the same filters as the order list and streams the result
// as a CSV download.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := getOrders.ParseListQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /orders/export - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	data, err := h.service.ExportCSV(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /orders/export - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	filename := fmt.Sprintf("repair-orders-%s.csv", time.Now().Format("20060102"))
	handlers.RespondCSV(w, filename, data)
}
