package get_active_sessions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	msgInvalidFloor        = "некорректный номер этажа"
	msgInvalidEnteredAfter = "некорректный формат enteredAfter, ожидается RFC3339"
)

var (
	errInvalidFloor        = errors.New("get_active_sessions: invalid floor")
	errInvalidEnteredAfter = errors.New("get_active_sessions: invalid enteredAfter")
)

type Handler struct {
	service SessionsService
	logger  Logger
}

func NewHandler(service SessionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking/sessions/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /parking/sessions/active - Invalid filter: %v", err)
		switch {
		case errors.Is(err, errInvalidFloor):
			handlers.RespondBadRequest(w, msgInvalidFloor)
		default:
			handlers.RespondBadRequest(w, msgInvalidEnteredAfter)
		}
		return
	}

	views, err := h.service.GetActiveSessions(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /parking/sessions/active - Failed to list sessions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	revenue, err := h.service.PotentialRevenue(r.Context())
	if err != nil {
		h.logger.Error("GET /parking/sessions/active - Failed to compute potential revenue: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ActiveSessionsResponse{
		Sessions:         views,
		Count:            len(views),
		PotentialRevenue: revenue,
	})
}
