package status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotRepository интерфейс репозитория парковочных мест
type SpotRepository interface {
	CountByFloor(ctx context.Context) ([]domain.FloorOccupancy, error)
}

// Cache интерфейс кэша снапшота статуса (опционален, может быть nil).
// Реализуется redis-клиентом; при недоступности кэша сервис читает
// напрямую из БД.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
