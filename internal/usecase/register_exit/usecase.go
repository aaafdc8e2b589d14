package register_exit

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ParkingService/internal/queue"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

// UseCase use case регистрации выезда автомобиля
type UseCase struct {
	spotRepo     SpotRepository
	sessionRepo  SessionRepository
	txManager    TransactionManager
	publisher    EventPublisher // nil, если публикация событий выключена
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spotRepo SpotRepository,
	sessionRepo SessionRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		spotRepo:     spotRepo,
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет регистрацию выезда.
// Закрытие сессии (exit_time + amount_paid + статус) и освобождение
// места выполняются в одной сериализуемой транзакции: либо оба
// изменения видны, либо ни одного. Тариф берется из сессии, а не из
// конфигурации - изменение тарифа не влияет на уже открытые сессии.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация и валидация
	plate := domain.NormalizePlate(req.LicensePlate)
	if plate == "" {
		uc.logger.Warn("RegisterExit: empty license plate")
		return nil, fmt.Errorf("%w: licensePlate is required", ErrInvalidInput)
	}

	uc.logger.Info("RegisterExit: plate=%s", plate)

	// 2. Текущее время (UTC)
	now := uc.timeProvider.Now()

	var result *Response

	// 3. Сериализуемая транзакция
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Находим открытую сессию
		session, err := uc.sessionRepo.GetOpenByPlate(txCtx, plate)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: failed to get open session: %v", ErrInternal, err)
		}

		// 3.2. Считаем длительность и сумму. Минимальный порог
		// оплаты применяется к длительности, округление - только к
		// итоговой сумме в ответе.
		durationHours := now.Sub(session.EntryTime).Hours()
		billableHours := domain.BillableHours(durationHours)
		amountDue := domain.AmountDue(durationHours, session.HourlyRate)

		// 3.3. Закрываем сессию (ровно один раз)
		if err := uc.sessionRepo.Close(txCtx, session.ID, now, amountDue); err != nil {
			if errors.Is(err, sessionRepo.ErrSessionAlreadyClosed) {
				// Конкурентный выезд успел первым
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: failed to close session: %v", ErrInternal, err)
		}

		// 3.4. Освобождаем место
		if err := uc.spotRepo.SetOccupied(txCtx, session.SpotID, false); err != nil {
			return fmt.Errorf("%w: failed to free spot: %v", ErrInternal, err)
		}

		result = &Response{
			SessionID:     session.ID,
			LicensePlate:  plate,
			EntryTime:     session.EntryTime,
			ExitTime:      now,
			DurationHours: durationHours,
			BillableHours: billableHours,
			AmountDue:     domain.RoundCurrency(amountDue),
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationConflict) {
			uc.logger.Warn("RegisterExit: serialization conflict for plate=%s", plate)
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, err
	}

	uc.logger.Info("RegisterExit: plate=%s exited, duration=%.2fh, amount=%.2f",
		plate, result.DurationHours, result.AmountDue)

	// 4. Публикуем событие после коммита (best effort)
	if uc.publisher != nil {
		event := queue.VehicleExitedEvent{
			SessionID:     result.SessionID,
			LicensePlate:  result.LicensePlate,
			ExitTime:      result.ExitTime,
			DurationHours: result.DurationHours,
			AmountDue:     result.AmountDue,
		}
		if err := uc.publisher.PublishVehicleExited(ctx, event); err != nil {
			uc.logger.Warn("RegisterExit: failed to publish exit event for plate=%s: %v", plate, err)
		}
	}

	return result, nil
}
