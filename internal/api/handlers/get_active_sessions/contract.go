package get_active_sessions

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/sessions/models"
)

type SessionsService interface {
	GetActiveSessions(ctx context.Context, filter domain.SessionListFilter) ([]models.SessionView, error)
	PotentialRevenue(ctx context.Context) (float64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
