package update_order_status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fretworks/repairshop-service/internal/api/handlers"
	updateOrderStatus "github.com/fretworks/repairshop-service/internal/usecase/update_order_status"
)

const (
	msgInvalidOrderID = "订单编号格式不正确"
	msgInvalidBody    = "请求数据格式不正确"
	msgInvalidStatus  = "未知的订单状态"
	msgSameStatus     = "订单已处于该状态"
	msgOrderNotFound  = "订单不存在"
	msgUpdateFailed   = "状态更新失败，已恢复原状态"
)

type Handler struct {
	useCase UpdateOrderStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateOrderStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/orders/{orderId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := uuid.Parse(vars["orderId"])
	if err != nil {
		h.logger.Warn("PATCH /orders/{orderId}/status - Invalid order id %q: %v",
			vars["orderId"], err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PATCH /orders/{orderId}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(orderID))
	if err != nil {
		switch {
		case errors.Is(err, updateOrderStatus.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateOrderStatus.ErrSameStatus):
			handlers.RespondConflict(w, msgSameStatus)

		case errors.Is(err, updateOrderStatus.ErrOrderNotFound):
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, updateOrderStatus.ErrUpdateFailed):
			h.logger.Error("PATCH /orders/{orderId}/status - Rolled back: id=%s, error=%v",
				orderID, err)
			handlers.RespondConflict(w, msgUpdateFailed)

		default:
			h.logger.Error("PATCH /orders/{orderId}/status - Failed: id=%s, error=%v",
				orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
