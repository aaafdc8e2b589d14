package get_sessions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	msgInvalidFloor        = "некорректный номер этажа"
	msgInvalidEnteredAfter = "некорректный формат enteredAfter, ожидается RFC3339"
	msgInvalidStatus       = "некорректный статус сессии, ожидается open или closed"
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

// Handle GET /api/v1/parking/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /parking/sessions - Invalid filter: %v", err)
		switch {
		case errors.Is(err, errInvalidFloor):
			handlers.RespondBadRequest(w, msgInvalidFloor)
		case errors.Is(err, errInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			handlers.RespondBadRequest(w, msgInvalidEnteredAfter)
		}
		return
	}

	views, err := h.service.GetAllSessionsForDashboard(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /parking/sessions - Failed to list sessions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &SessionsResponse{
		Sessions: views,
		Count:    len(views),
	})
}
