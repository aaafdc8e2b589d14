package register_exit

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/queue"
)

// SpotRepository интерфейс репозитория парковочных мест
type SpotRepository interface {
	SetOccupied(ctx context.Context, id int64, occupied bool) error
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetOpenByPlate(ctx context.Context, plate string) (*domain.ParkingSession, error)
	Close(ctx context.Context, id int64, exitTime time.Time, amountPaid float64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий (опционален, может быть nil)
type EventPublisher interface {
	PublishVehicleExited(ctx context.Context, event queue.VehicleExitedEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
