// Package analytics read-only агрегация по сохраненным сессиям:
// выручка и число машин за день, средняя длительность, месячные
// отчеты. Сессии выбираются репозиторием, агрегация выполняется
// в памяти - объемы парковочной истории этого не ограничивают.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Service сервис аналитики
type Service struct {
	sessionRepo  SessionRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetParkingAnalytics возвращает сводку за текущий UTC-день:
// выручка и число въехавших машин за день, средняя длительность
// закрытых сессий, текущая занятость
func (s *Service) GetParkingAnalytics(ctx context.Context) (*Overview, error) {
	now := s.timeProvider.Now()
	midnight := startOfDayUTC(now)

	// Сессии, въехавшие сегодня (открытые и закрытые)
	todayRecords, err := s.sessionRepo.List(ctx, domain.SessionListFilter{
		EnteredAfter: &midnight,
	})
	if err != nil {
		s.logger.Error("GetParkingAnalytics: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetParkingAnalytics - repository error: %v", ErrInternal, err)
	}

	// Все закрытые сессии - для средней длительности
	closedRecords, err := s.sessionRepo.List(ctx, domain.SessionListFilter{}.ClosedOnly())
	if err != nil {
		s.logger.Error("GetParkingAnalytics: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetParkingAnalytics - repository error: %v", ErrInternal, err)
	}

	occupancy, err := s.sessionRepo.CountOpen(ctx)
	if err != nil {
		s.logger.Error("GetParkingAnalytics: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetParkingAnalytics - repository error: %v", ErrInternal, err)
	}

	return &Overview{
		TodayRevenue:         domain.RoundCurrency(sumRevenue(todayRecords)),
		TodayVehicles:        len(todayRecords),
		AverageDurationHours: averageDurationHours(closedRecords),
		CurrentOccupancy:     occupancy,
	}, nil
}

// GetRevenueByMonth возвращает выручку по календарным месяцам
// (ключ - месяц entry_time, UTC). Учитываются только закрытые сессии.
func (s *Service) GetRevenueByMonth(ctx context.Context) ([]MonthlyRevenue, error) {
	records, err := s.sessionRepo.List(ctx, domain.SessionListFilter{}.ClosedOnly())
	if err != nil {
		s.logger.Error("GetRevenueByMonth: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRevenueByMonth - repository error: %v", ErrInternal, err)
	}

	return groupRevenueByMonth(records), nil
}

// GetMonthlyParkingUsage возвращает число закрытых сессий по
// календарным месяцам
func (s *Service) GetMonthlyParkingUsage(ctx context.Context) ([]MonthlyUsage, error) {
	records, err := s.sessionRepo.List(ctx, domain.SessionListFilter{}.ClosedOnly())
	if err != nil {
		s.logger.Error("GetMonthlyParkingUsage: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetMonthlyParkingUsage - repository error: %v", ErrInternal, err)
	}

	return groupUsageByMonth(records), nil
}

// RevenueSince возвращает выручку по сессиям, закрытым за последние
// window часов (запрос ассистента "сколько заработали за N часов")
func (s *Service) RevenueSince(ctx context.Context, window time.Duration) (float64, error) {
	if window <= 0 {
		return 0, fmt.Errorf("%w: window must be positive", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	cutoff := now.Add(-window)

	// Сессии, закрытые в окне, въехали не раньше начала окна минус
	// максимальная стоянка; без такой оценки фильтруем по exit_time в памяти
	records, err := s.sessionRepo.List(ctx, domain.SessionListFilter{}.ClosedOnly())
	if err != nil {
		s.logger.Error("RevenueSince: repository error: %v", err)
		return 0, fmt.Errorf("%w: RevenueSince - repository error: %v", ErrInternal, err)
	}

	return domain.RoundCurrency(revenueClosedSince(records, cutoff)), nil
}
