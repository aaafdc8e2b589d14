package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

const helpAnswer = "I can answer questions about parking status, available spots, " +
	"how many cars are parked, counts by color or brand, distributions by color, " +
	"brand or floor, and revenue for the last N hours."

// Service отвечает на вопросы оператора о текущем состоянии парковки.
// Каждое намерение транслируется ровно в один read-вызов нижележащих
// сервисов, ответ форматируется в короткую текстовую строку.
type Service struct {
	statusProvider  StatusProvider
	sessionReader   SessionReader
	revenueProvider RevenueProvider
	log             Logger
}

func New(statusProvider StatusProvider, sessionReader SessionReader, revenueProvider RevenueProvider, log Logger) *Service {
	return &Service{
		statusProvider:  statusProvider,
		sessionReader:   sessionReader,
		revenueProvider: revenueProvider,
		log:             log,
	}
}

// Answer разбирает вопрос и возвращает текстовый ответ
func (s *Service) Answer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	intent := ParseIntent(question)
	s.log.Info("assistant: Answer - intent=%d question=%q", intent.Kind, question)

	switch intent.Kind {
	case IntentStatus:
		return s.answerStatus(ctx)
	case IntentAvailability:
		return s.answerAvailability(ctx)
	case IntentCurrentlyParked:
		return s.answerCurrentlyParked(ctx)
	case IntentCountByColor:
		return s.answerCountByColor(ctx, intent.Color)
	case IntentCountByBrand:
		return s.answerCountByBrand(ctx, intent.Brand)
	case IntentColorDistribution:
		return s.answerDistribution(ctx, func(v VehicleFacts) string { return v.Color })
	case IntentBrandDistribution:
		return s.answerDistribution(ctx, func(v VehicleFacts) string { return v.Brand })
	case IntentFloorDistribution:
		return s.answerFloorDistribution(ctx)
	case IntentRevenueWindow:
		return s.answerRevenueWindow(ctx, intent.WindowHours)
	default:
		return helpAnswer, nil
	}
}

// VehicleFacts атрибуты машины, по которым строятся распределения
type VehicleFacts struct {
	Color string
	Brand string
}

func (s *Service) answerStatus(ctx context.Context) (string, error) {
	snapshot, err := s.statusProvider.GetParkingStatus(ctx)
	if err != nil {
		s.log.Error("assistant: answerStatus - get status: %v", err)
		return "", fmt.Errorf("%w: answerStatus: %v", ErrInternal, err)
	}
	return fmt.Sprintf("The parking lot has %d spots, %d occupied and %d available (%.1f%% occupancy).",
		snapshot.TotalSpots, snapshot.OccupiedSpots, snapshot.AvailableSpots, snapshot.OccupancyRate), nil
}

func (s *Service) answerAvailability(ctx context.Context) (string, error) {
	snapshot, err := s.statusProvider.GetParkingStatus(ctx)
	if err != nil {
		s.log.Error("assistant: answerAvailability - get status: %v", err)
		return "", fmt.Errorf("%w: answerAvailability: %v", ErrInternal, err)
	}
	return fmt.Sprintf("There are %d available spots out of %d.",
		snapshot.AvailableSpots, snapshot.TotalSpots), nil
}

func (s *Service) answerCurrentlyParked(ctx context.Context) (string, error) {
	views, err := s.sessionReader.GetActiveSessions(ctx, domain.SessionListFilter{})
	if err != nil {
		s.log.Error("assistant: answerCurrentlyParked - list sessions: %v", err)
		return "", fmt.Errorf("%w: answerCurrentlyParked: %v", ErrInternal, err)
	}
	if len(views) == 1 {
		return "There is 1 vehicle currently parked.", nil
	}
	return fmt.Sprintf("There are %d vehicles currently parked.", len(views)), nil
}

func (s *Service) answerCountByColor(ctx context.Context, color string) (string, error) {
	views, err := s.sessionReader.GetActiveSessions(ctx, domain.SessionListFilter{Color: ptr.Ptr(color)})
	if err != nil {
		s.log.Error("assistant: answerCountByColor - list sessions: %v", err)
		return "", fmt.Errorf("%w: answerCountByColor: %v", ErrInternal, err)
	}
	if len(views) == 1 {
		return fmt.Sprintf("There is 1 %s vehicle currently parked.", color), nil
	}
	return fmt.Sprintf("There are %d %s vehicles currently parked.", len(views), color), nil
}

func (s *Service) answerCountByBrand(ctx context.Context, brand string) (string, error) {
	views, err := s.sessionReader.GetActiveSessions(ctx, domain.SessionListFilter{Brand: ptr.Ptr(brand)})
	if err != nil {
		s.log.Error("assistant: answerCountByBrand - list sessions: %v", err)
		return "", fmt.Errorf("%w: answerCountByBrand: %v", ErrInternal, err)
	}
	if len(views) == 1 {
		return fmt.Sprintf("There is 1 %s currently parked.", brand), nil
	}
	return fmt.Sprintf("There are %d %s vehicles currently parked.", len(views), brand), nil
}

func (s *Service) answerDistribution(ctx context.Context, keyOf func(VehicleFacts) string) (string, error) {
	views, err := s.sessionReader.GetActiveSessions(ctx, domain.SessionListFilter{})
	if err != nil {
		s.log.Error("assistant: answerDistribution - list sessions: %v", err)
		return "", fmt.Errorf("%w: answerDistribution: %v", ErrInternal, err)
	}
	if len(views) == 0 {
		return "The parking lot is empty.", nil
	}

	counts := make(map[string]int)
	for _, v := range views {
		key := keyOf(VehicleFacts{Color: v.Vehicle.Color, Brand: v.Vehicle.Brand})
		if key == "" {
			key = "unknown"
		}
		counts[strings.ToLower(key)]++
	}
	return formatCounts(counts), nil
}

func (s *Service) answerFloorDistribution(ctx context.Context) (string, error) {
	snapshot, err := s.statusProvider.GetParkingStatus(ctx)
	if err != nil {
		s.log.Error("assistant: answerFloorDistribution - get status: %v", err)
		return "", fmt.Errorf("%w: answerFloorDistribution: %v", ErrInternal, err)
	}

	parts := make([]string, 0, len(snapshot.Floors))
	for _, f := range snapshot.Floors {
		parts = append(parts, fmt.Sprintf("floor %d: %d/%d occupied", f.Floor, f.Occupied, f.Total))
	}
	if len(parts) == 0 {
		return "The parking lot has no floors configured.", nil
	}
	return strings.Join(parts, ", ") + ".", nil
}

func (s *Service) answerRevenueWindow(ctx context.Context, hours int) (string, error) {
	revenue, err := s.revenueProvider.RevenueSince(ctx, time.Duration(hours)*time.Hour)
	if err != nil {
		s.log.Error("assistant: answerRevenueWindow - revenue since: %v", err)
		return "", fmt.Errorf("%w: answerRevenueWindow: %v", ErrInternal, err)
	}
	return fmt.Sprintf("Revenue for the last %d hours is $%.2f.", hours, domain.RoundCurrency(revenue)), nil
}

// formatCounts собирает "3 red, 2 blue" в детерминированном порядке:
// по убыванию счетчика, при равенстве по алфавиту
func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d %s", counts[k], k))
	}
	return strings.Join(parts, ", ") + "."
}
