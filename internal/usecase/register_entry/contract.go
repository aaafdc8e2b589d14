package register_entry

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/queue"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Upsert(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
}

// SpotRepository интерфейс репозитория парковочных мест
type SpotRepository interface {
	FindFreeByType(ctx context.Context, spotType domain.SpotType) (*domain.ParkingSpot, error)
	SetOccupied(ctx context.Context, id int64, occupied bool) error
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error)
	GetOpenByPlate(ctx context.Context, plate string) (*domain.ParkingSession, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий (опционален, может быть nil)
type EventPublisher interface {
	PublishVehicleEntered(ctx context.Context, event queue.VehicleEnteredEvent) error
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

// RealTimeProvider реальный провайдер времени для production.
// Время всегда в UTC - все метки времени леджера хранятся в UTC.
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
