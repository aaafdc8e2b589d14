package get_analytics

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

// Handle GET /api/v1/parking/analytics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.GetParkingAnalytics(r.Context())
	if err != nil {
		h.logger.Error("GET /parking/analytics - Failed to get analytics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, overview)
}
