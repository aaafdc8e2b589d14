package assistant

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-ParkingService/internal/service/status"
)

// StatusProvider источник снапшота статуса парковки
type StatusProvider interface {
	GetParkingStatus(ctx context.Context) (*status.Snapshot, error)
}

// SessionReader источник открытых сессий с фильтрацией
type SessionReader interface {
	GetActiveSessions(ctx context.Context, filter domain.SessionListFilter) ([]models.SessionView, error)
}

// RevenueProvider источник выручки за окно времени
type RevenueProvider interface {
	RevenueSince(ctx context.Context, window time.Duration) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
