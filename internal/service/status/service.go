package status

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const cacheKey = "parking:status"

// Service сервис статуса парковки.
// Снапшот - чистое чтение: повторный вызов без промежуточных
// въездов/выездов возвращает идентичный результат.
type Service struct {
	spotRepo SpotRepository
	cache    Cache // nil, если кэширование выключено
	cacheTTL time.Duration
	logger   Logger
}

// NewService создает новый экземпляр сервиса статуса
func NewService(spotRepo SpotRepository, cache Cache, cacheTTL time.Duration, logger Logger) *Service {
	return &Service{
		spotRepo: spotRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// GetParkingStatus возвращает агрегированный статус парковки в целом
// и по этажам. При включенном кэше снапшот живет cacheTTL; ошибки
// кэша не фатальны - сервис деградирует до прямого чтения.
func (s *Service) GetParkingStatus(ctx context.Context) (*Snapshot, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var snapshot Snapshot
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return &snapshot, nil
			}
			s.logger.Warn("GetParkingStatus: failed to decode cached snapshot, refetching")
		}
	}

	floors, err := s.spotRepo.CountByFloor(ctx)
	if err != nil {
		s.logger.Error("GetParkingStatus: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetParkingStatus - repository error: %v", ErrInternal, err)
	}

	snapshot := buildSnapshot(floors)

	if s.cache != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(data), s.cacheTTL); err != nil {
				s.logger.Warn("GetParkingStatus: failed to cache snapshot: %v", err)
			}
		}
	}

	return snapshot, nil
}

// buildSnapshot сворачивает поэтажные счетчики в снапшот
func buildSnapshot(floors []domain.FloorOccupancy) *Snapshot {
	snapshot := &Snapshot{
		Floors: make([]FloorStatus, 0, len(floors)),
	}

	for _, f := range floors {
		snapshot.TotalSpots += f.Total
		snapshot.OccupiedSpots += f.Occupied
		snapshot.Floors = append(snapshot.Floors, FloorStatus{
			Floor:     f.FloorNumber,
			Total:     f.Total,
			Occupied:  f.Occupied,
			Available: f.Available(),
		})
	}

	snapshot.AvailableSpots = snapshot.TotalSpots - snapshot.OccupiedSpots
	// Один знак после запятой, как на дашборде
	rate := domain.OccupancyRate(snapshot.OccupiedSpots, snapshot.TotalSpots)
	snapshot.OccupancyRate = math.Round(rate*10) / 10

	return snapshot
}
