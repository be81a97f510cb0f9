package get_month_occupancy

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fretworks/repairshop-service/internal/api/handlers"
	getMonthOccupancy "github.com/fretworks/repairshop-service/internal/usecase/get_month_occupancy"
)

const (
	msgInvalidYear  = "年份不正确"
	msgInvalidMonth = "月份不正确，应为 1-12"
)

type Handler struct {
	useCase GetMonthOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /availability/{year}/{month} - Invalid year %q: %v", vars["year"], err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /availability/{year}/{month} - Invalid month %q: %v", vars["month"], err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthOccupancy.Request{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthOccupancy.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /availability/{year}/{month} - Failed: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
