package register_exit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	registerExit "github.com/m04kA/SMC-ParkingService/internal/usecase/register_exit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный госномер"
	msgVehicleNotFound    = "автомобиль с таким госномером не найден на парковке"
	msgConflict           = "конфликт параллельных запросов, повторите попытку"
)

type Handler struct {
	useCase RegisterExitUseCase
	logger  Logger
}

func NewHandler(useCase RegisterExitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/exit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterExitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/exit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerExit.ErrInvalidInput):
			h.logger.Warn("POST /vehicles/exit - Invalid input: plate=%q", req.LicensePlate)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, registerExit.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/exit - Vehicle not found: plate=%q", req.LicensePlate)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, registerExit.ErrConflict):
			h.logger.Warn("POST /vehicles/exit - Serialization conflict: plate=%q", req.LicensePlate)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		default:
			h.logger.Error("POST /vehicles/exit - Failed to register exit: plate=%q, error=%v", req.LicensePlate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /vehicles/exit - Exit registered: session_id=%d, plate=%q, amount_due=%.2f",
		result.SessionID, result.LicensePlate, result.AmountDue)
	handlers.RespondJSON(w, http.StatusOK, response)
}
