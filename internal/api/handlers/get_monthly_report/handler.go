package get_monthly_report

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking/analytics/monthly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.service.GetRevenueByMonth(r.Context())
	if err != nil {
		h.logger.Error("GET /parking/analytics/monthly - Failed to get revenue: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	usage, err := h.service.GetMonthlyParkingUsage(r.Context())
	if err != nil {
		h.logger.Error("GET /parking/analytics/monthly - Failed to get usage: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &MonthlyReportResponse{
		Revenue: revenue,
		Usage:   usage,
	})
}
