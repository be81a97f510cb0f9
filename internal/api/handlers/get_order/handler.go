package get_order

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fretworks/repairshop-service/internal/api/handlers"
	"github.com/fretworks/repairshop-service/internal/service/orders"
)

const (
	msgInvalidOrderID = "订单编号格式不正确"
	msgOrderNotFound  = "订单不存在"
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

// Handle GET /api/v1/orders/{orderId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := uuid.Parse(vars["orderId"])
	if err != nil {
		h.logger.Warn("GET /orders/{orderId} - Invalid order id %q: %v", vars["orderId"], err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	result, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			handlers.RespondNotFound(w, msgOrderNotFound)

		default:
			h.logger.Error("GET /orders/{orderId} - Failed: id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
