package register_entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	"github.com/m04kA/SMC-ParkingService/internal/queue"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

// UseCase use case регистрации въезда автомобиля
type UseCase struct {
	vehicleRepo  VehicleRepository
	spotRepo     SpotRepository
	sessionRepo  SessionRepository
	txManager    TransactionManager
	publisher    EventPublisher // nil, если публикация событий выключена
	timeProvider TimeProvider
	hourlyRate   float64 // Текущий тариф; фиксируется на сессии при въезде
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicleRepo VehicleRepository,
	spotRepo SpotRepository,
	sessionRepo SessionRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	hourlyRate float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicleRepo:  vehicleRepo,
		spotRepo:     spotRepo,
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		hourlyRate:   hourlyRate,
		logger:       logger,
	}
}

// Execute выполняет регистрацию въезда.
// Все операции с БД идут в одной сериализуемой транзакции: проверка
// открытой сессии, выбор места, upsert автомобиля, открытие сессии и
// пометка места занятым видны снаружи атомарно. Неудавшийся въезд не
// оставляет ни сессии, ни занятого места.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация и валидация
	req.LicensePlate = domain.NormalizePlate(req.LicensePlate)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterEntry: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RegisterEntry: plate=%s, spot_type=%s", req.LicensePlate, req.SpotType)

	// 2. Текущее время (UTC) - одно на всю операцию
	now := uc.timeProvider.Now()

	var (
		createdSession *domain.ParkingSession
		assignedSpot   *domain.ParkingSpot
		vehicle        *domain.Vehicle
	)

	// 3. Сериализуемая транзакция
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. У автомобиля не должно быть открытой сессии
		_, err := uc.sessionRepo.GetOpenByPlate(txCtx, req.LicensePlate)
		if err == nil {
			return ErrAlreadyParked
		}
		if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return fmt.Errorf("%w: failed to check open session: %v", ErrInternal, err)
		}

		// 3.2. Выбираем свободное место: минимальный этаж, затем
		// минимальный номер (строка блокируется FOR UPDATE)
		spot, err := uc.spotRepo.FindFreeByType(txCtx, req.SpotType)
		if err != nil {
			if errors.Is(err, spotRepo.ErrNoFreeSpot) {
				return ErrNoSpotAvailable
			}
			return fmt.Errorf("%w: failed to find free spot: %v", ErrInternal, err)
		}

		// 3.3. Upsert автомобиля (атрибуты обновляются при повторном въезде)
		v, err := uc.vehicleRepo.Upsert(txCtx, &domain.Vehicle{
			LicensePlate: req.LicensePlate,
			Color:        req.Color,
			Brand:        req.Brand,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to upsert vehicle: %v", ErrInternal, err)
		}

		// 3.4. Открываем сессию с фиксацией текущего тарифа
		created, err := uc.sessionRepo.Create(txCtx, &domain.ParkingSession{
			VehicleID:  v.ID,
			SpotID:     spot.ID,
			EntryTime:  now,
			HourlyRate: uc.hourlyRate,
			Status:     domain.StatusOpen,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		// 3.5. Помечаем место занятым
		if err := uc.spotRepo.SetOccupied(txCtx, spot.ID, true); err != nil {
			return fmt.Errorf("%w: failed to occupy spot: %v", ErrInternal, err)
		}

		spot.IsOccupied = true
		createdSession = created
		assignedSpot = spot
		vehicle = v
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationConflict) {
			uc.logger.Warn("RegisterEntry: serialization conflict for plate=%s", req.LicensePlate)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("RegisterEntry: plate=%s assigned to spot=%d (floor=%d)",
		req.LicensePlate, assignedSpot.SpotNumber, assignedSpot.FloorNumber)

	// 4. Публикуем событие после коммита (best effort)
	if uc.publisher != nil {
		event := queue.VehicleEnteredEvent{
			SessionID:    createdSession.ID,
			LicensePlate: vehicle.LicensePlate,
			SpotNumber:   assignedSpot.SpotNumber,
			Floor:        assignedSpot.FloorNumber,
			SpotType:     string(assignedSpot.SpotType),
			EntryTime:    createdSession.EntryTime,
			HourlyRate:   createdSession.HourlyRate,
		}
		if err := uc.publisher.PublishVehicleEntered(ctx, event); err != nil {
			uc.logger.Warn("RegisterEntry: failed to publish entry event for plate=%s: %v",
				vehicle.LicensePlate, err)
		}
	}

	return &Response{
		SessionID:  createdSession.ID,
		EntryTime:  createdSession.EntryTime,
		HourlyRate: createdSession.HourlyRate,
		Vehicle: VehicleInfo{
			LicensePlate: vehicle.LicensePlate,
			Color:        vehicle.Color,
			Brand:        vehicle.Brand,
		},
		Spot: SpotInfo{
			SpotNumber: assignedSpot.SpotNumber,
			Floor:      assignedSpot.FloorNumber,
			SpotType:   assignedSpot.SpotType,
		},
	}, nil
}
