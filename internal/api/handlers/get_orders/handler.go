package get_orders

import (
	"errors"
	"net/http"

	"github.com/fretworks/repairshop-service/internal/api/handlers"
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

// Handle GET /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseListQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /orders - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /orders - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
