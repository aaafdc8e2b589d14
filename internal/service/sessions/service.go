package sessions

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/sessions/models"
)

// Service сервис чтения сессий для дашборда и ассистента
type Service struct {
	sessionRepo  SessionRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetActiveSessions возвращает открытые сессии с деталями автомобиля
// и места, отсортированные по entry_time по возрастанию.
// Фильтрация по цвету, марке, этажу и нижней границе въезда - контракт
// ассистента (запросы вида "сколько синих машин").
func (s *Service) GetActiveSessions(ctx context.Context, filter domain.SessionListFilter) ([]models.SessionView, error) {
	records, err := s.sessionRepo.List(ctx, filter.OpenOnly())
	if err != nil {
		s.logger.Error("GetActiveSessions: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetActiveSessions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRecordList(records, s.timeProvider.Now()), nil
}

// GetAllSessionsForDashboard возвращает полную историю сессий
// (открытые и закрытые); у закрытых заполнен amountPaid
func (s *Service) GetAllSessionsForDashboard(ctx context.Context, filter domain.SessionListFilter) ([]models.SessionView, error) {
	records, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllSessionsForDashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllSessionsForDashboard - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRecordList(records, s.timeProvider.Now()), nil
}

// PotentialRevenue возвращает оценку выручки при выезде всех
// текущих автомобилей "сейчас". Использует тот же минимальный порог
// оплаты, что и реальный расчет при выезде.
func (s *Service) PotentialRevenue(ctx context.Context) (float64, error) {
	records, err := s.sessionRepo.List(ctx, domain.SessionListFilter{}.OpenOnly())
	if err != nil {
		s.logger.Error("PotentialRevenue: repository error: %v", err)
		return 0, fmt.Errorf("%w: PotentialRevenue - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	total := 0.0
	for _, rec := range records {
		total += rec.PotentialRevenue(now)
	}

	return domain.RoundCurrency(total), nil
}
