package assistant_query

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/assistant"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyQuestion      = "вопрос не может быть пустым"
)

type Handler struct {
	service AssistantService
	logger  Logger
}

func NewHandler(service AssistantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/assistant/query
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/query - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	answer, err := h.service.Answer(r.Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyQuestion):
			h.logger.Warn("POST /assistant/query - Empty question")
			handlers.RespondBadRequest(w, msgEmptyQuestion)

		default:
			h.logger.Error("POST /assistant/query - Failed to answer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assistant/query - Answered: question=%q", req.Question)
	handlers.RespondJSON(w, http.StatusOK, &QueryResponse{Answer: answer})
}
