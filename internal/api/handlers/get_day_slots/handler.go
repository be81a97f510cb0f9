package get_day_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fretworks/repairshop-service/internal/api/handlers"
	"github.com/fretworks/repairshop-service/internal/domain"
	getDaySlots "github.com/fretworks/repairshop-service/internal/usecase/get_day_slots"
)

const (
	msgInvalidDate = "日期格式不正确，应为 YYYY-MM-DD"
	msgPastDate    = "不能选择过去的日期"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /availability/{date}/slots - Invalid date %q: %v", vars["date"], err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/{date}/slots - Failed: date=%s, error=%v",
				vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
