package create_order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fretworks/repairshop-service/internal/api/handlers"
	createOrder "github.com/fretworks/repairshop-service/internal/usecase/create_order"
)

const (
	msgInvalidBody  = "请求格式不正确"
	msgInvalidDate  = "日期格式不正确，应为 YYYY-MM-DD"
	msgInvalidInput = "表单内容不完整或格式不正确"
	msgPastDate     = "不能选择过去的日期"
	msgNotWorkday   = "维修店周末不营业，请选择工作日"
	msgUnknownSlot  = "无效的预约时间段"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := body.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /orders - Invalid date %q: %v", body.AppointmentDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createOrder.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createOrder.ErrNotWorkday):
			handlers.RespondBadRequest(w, msgNotWorkday)

		case errors.Is(err, createOrder.ErrUnknownSlot):
			h.logger.Warn("POST /orders - Unknown slot: %v", err)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		default:
			h.logger.Error("POST /orders - Failed to create order: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created: id=%s, date=%s, slot=%s",
		result.OrderID, body.AppointmentDate, body.AppointmentTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
