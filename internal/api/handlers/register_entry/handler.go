package register_entry

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	registerEntry "github.com/m04kA/SMC-ParkingService/internal/usecase/register_entry"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSpotType    = "некорректный тип парковочного места"
	msgInvalidInput       = "некорректные данные автомобиля"
	msgAlreadyParked      = "автомобиль уже находится на парковке"
	msgNoSpotAvailable    = "нет свободных мест запрошенного типа"
	msgConflict           = "конфликт параллельных запросов, повторите попытку"
)

type Handler struct {
	useCase RegisterEntryUseCase
	logger  Logger
}

func NewHandler(useCase RegisterEntryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/entry
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/entry - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /vehicles/entry - Invalid spot type: %q", req.SpotType)
		handlers.RespondBadRequest(w, msgInvalidSpotType)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, registerEntry.ErrInvalidInput):
			h.logger.Warn("POST /vehicles/entry - Invalid input: plate=%q", req.LicensePlate)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, registerEntry.ErrAlreadyParked):
			h.logger.Warn("POST /vehicles/entry - Already parked: plate=%q", req.LicensePlate)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyParked)

		case errors.Is(err, registerEntry.ErrNoSpotAvailable):
			h.logger.Warn("POST /vehicles/entry - No spot available: plate=%q, spot_type=%q", req.LicensePlate, req.SpotType)
			handlers.RespondError(w, http.StatusConflict, msgNoSpotAvailable)

		case errors.Is(err, registerEntry.ErrConflict):
			h.logger.Warn("POST /vehicles/entry - Serialization conflict: plate=%q", req.LicensePlate)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		default:
			h.logger.Error("POST /vehicles/entry - Failed to register entry: plate=%q, error=%v", req.LicensePlate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /vehicles/entry - Entry registered: session_id=%d, plate=%q, floor=%d, spot=%d",
		result.SessionID, result.Vehicle.LicensePlate, result.Spot.Floor, result.Spot.SpotNumber)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
