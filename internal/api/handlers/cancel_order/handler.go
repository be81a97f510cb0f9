package cancel_order

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
	msgCannotCancel   = "该订单已完成或已取消，无法取消"
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

// CancelResponse HTTP response body
type CancelResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handle PATCH /api/v1/orders/{orderId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := uuid.Parse(vars["orderId"])
	if err != nil {
		h.logger.Warn("PATCH /orders/{orderId}/cancel - Invalid order id %q: %v",
			vars["orderId"], err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	if err := h.service.Cancel(r.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, orders.ErrCannotCancel):
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /orders/{orderId}/cancel - Failed: id=%s, error=%v",
				orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CancelResponse{
		OrderID: orderID.String(),
		Status:  "cancelled",
		Message: "订单已取消",
	})
}
