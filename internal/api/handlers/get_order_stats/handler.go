package get_order_stats

import (
	"net/http"

	"github.com/fretworks/repairshop-service/internal/api/handlers"
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

// StatsResponse status counters shown in the dashboard header
type StatsResponse struct {
	Pending   int `json:"pending"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Handle GET /api/v1/orders/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /orders/stats - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &StatsResponse{
		Pending:   result.Pending,
		Active:    result.Active,
		Completed: result.Completed,
		Total:     result.Total,
	})
}
