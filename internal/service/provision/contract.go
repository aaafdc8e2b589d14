package provision

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotRepository интерфейс репозитория парковочных мест
type SpotRepository interface {
	CountAll(ctx context.Context) (int, error)
	CreateFloor(ctx context.Context, floor *domain.Floor) error
	CreateBulk(ctx context.Context, spots []domain.ParkingSpot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
