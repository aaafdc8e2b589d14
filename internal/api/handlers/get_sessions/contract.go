package get_sessions

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/sessions/models"
)

type SessionsService interface {
	GetAllSessionsForDashboard(ctx context.Context, filter domain.SessionListFilter) ([]models.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
