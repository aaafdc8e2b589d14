// Package provision материализует этажи и места при старте сервиса.
// Конфигурация парковки читается один раз; изменение числа этажей или
// мест после инициализации потребовало бы отдельной операции
// репровижининга и не поддерживается.
package provision

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Service сервис провижининга парковки
type Service struct {
	spotRepo  SpotRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса провижининга
func NewService(spotRepo SpotRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		spotRepo:  spotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// EnsureLot создает этажи и места, если парковка еще не
// инициализирована. Идемпотентна: при наличии хотя бы одного места
// ничего не делает. Номера мест сквозные по всей парковке, типы
// назначаются детерминированно (domain.SpotTypeForNumber).
func (s *Service) EnsureLot(ctx context.Context, floors, spotsPerFloor int) error {
	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := s.spotRepo.CountAll(txCtx)
		if err != nil {
			return fmt.Errorf("provision: count spots: %w", err)
		}
		if count > 0 {
			s.logger.Info("Provision: lot already initialized (%d spots), skipping", count)
			return nil
		}

		for floor := 1; floor <= floors; floor++ {
			if err := s.spotRepo.CreateFloor(txCtx, &domain.Floor{
				FloorNumber: floor,
				TotalSpots:  spotsPerFloor,
			}); err != nil {
				return fmt.Errorf("provision: create floor %d: %w", floor, err)
			}

			spots := make([]domain.ParkingSpot, 0, spotsPerFloor)
			for i := 1; i <= spotsPerFloor; i++ {
				spots = append(spots, domain.ParkingSpot{
					FloorNumber: floor,
					SpotNumber:  (floor-1)*spotsPerFloor + i,
					SpotType:    domain.SpotTypeForNumber(i, spotsPerFloor),
					IsOccupied:  false,
				})
			}

			if err := s.spotRepo.CreateBulk(txCtx, spots); err != nil {
				return fmt.Errorf("provision: create spots for floor %d: %w", floor, err)
			}
		}

		s.logger.Info("Provision: initialized %d floors x %d spots", floors, spotsPerFloor)
		return nil
	})
}
