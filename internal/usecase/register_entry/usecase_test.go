package register_entry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	"github.com/m04kA/SMC-ParkingService/internal/queue"
)

// --- Фейки ---

type fakeVehicleRepo struct {
	upserted *domain.Vehicle
}

func (f *fakeVehicleRepo) Upsert(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	stored := *v
	stored.ID = 7
	f.upserted = &stored
	return &stored, nil
}

type fakeSpotRepo struct {
	freeSpot   *domain.ParkingSpot
	occupiedID int64
	occupied   bool
}

func (f *fakeSpotRepo) FindFreeByType(_ context.Context, spotType domain.SpotType) (*domain.ParkingSpot, error) {
	if f.freeSpot == nil || f.freeSpot.SpotType != spotType {
		return nil, spotRepo.ErrNoFreeSpot
	}
	spot := *f.freeSpot
	return &spot, nil
}

func (f *fakeSpotRepo) SetOccupied(_ context.Context, id int64, occupied bool) error {
	f.occupiedID = id
	f.occupied = occupied
	return nil
}

type fakeSessionRepo struct {
	openSession *domain.ParkingSession
	created     *domain.ParkingSession
}

func (f *fakeSessionRepo) Create(_ context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error) {
	stored := *s
	stored.ID = 42
	f.created = &stored
	return &stored, nil
}

func (f *fakeSessionRepo) GetOpenByPlate(_ context.Context, plate string) (*domain.ParkingSession, error) {
	if f.openSession != nil {
		return f.openSession, nil
	}
	return nil, sessionRepo.ErrSessionNotFound
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakePublisher struct {
	events []queue.VehicleEnteredEvent
}

func (f *fakePublisher) PublishVehicleEntered(_ context.Context, event queue.VehicleEnteredEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Тесты ---

func newTestUseCase(vr *fakeVehicleRepo, sr *fakeSpotRepo, ser *fakeSessionRepo, pub *fakePublisher, now time.Time) *UseCase {
	var publisher EventPublisher
	if pub != nil {
		publisher = pub
	}
	uc := NewUseCase(vr, sr, ser, &fakeTxManager{}, publisher, 5.0, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestRegisterEntrySuccess(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	spots := &fakeSpotRepo{freeSpot: &domain.ParkingSpot{
		ID: 3, FloorNumber: 1, SpotNumber: 9, SpotType: domain.SpotTypeRegular,
	}}
	vehicles := &fakeVehicleRepo{}
	sessions := &fakeSessionRepo{}
	publisher := &fakePublisher{}
	uc := newTestUseCase(vehicles, spots, sessions, publisher, now)

	resp, err := uc.Execute(context.Background(), &Request{
		LicensePlate: " ab123cd ",
		Color:        "red",
		Brand:        "toyota",
		SpotType:     domain.SpotTypeRegular,
	})
	require.NoError(t, err)

	// Госномер нормализован, тариф зафиксирован, место занято
	assert.Equal(t, "AB123CD", resp.Vehicle.LicensePlate)
	assert.Equal(t, int64(42), resp.SessionID)
	assert.Equal(t, now, resp.EntryTime)
	assert.Equal(t, 5.0, resp.HourlyRate)
	assert.Equal(t, 9, resp.Spot.SpotNumber)
	assert.Equal(t, int64(3), spots.occupiedID)
	assert.True(t, spots.occupied)

	// Сессия открыта с фиксированным тарифом
	require.NotNil(t, sessions.created)
	assert.Equal(t, domain.StatusOpen, sessions.created.Status)
	assert.Equal(t, 5.0, sessions.created.HourlyRate)

	// Событие опубликовано после коммита
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "AB123CD", publisher.events[0].LicensePlate)
}

func TestRegisterEntryAlreadyParked(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	spots := &fakeSpotRepo{freeSpot: &domain.ParkingSpot{
		ID: 3, FloorNumber: 1, SpotNumber: 9, SpotType: domain.SpotTypeRegular,
	}}
	sessions := &fakeSessionRepo{openSession: &domain.ParkingSession{ID: 1, Status: domain.StatusOpen}}
	uc := newTestUseCase(&fakeVehicleRepo{}, spots, sessions, nil, now)

	_, err := uc.Execute(context.Background(), &Request{
		LicensePlate: "AB123CD",
		SpotType:     domain.SpotTypeRegular,
	})
	assert.ErrorIs(t, err, ErrAlreadyParked)
	assert.Nil(t, sessions.created)
}

func TestRegisterEntryNoSpotAvailable(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	// Свободны только compact, запрошен oversized
	spots := &fakeSpotRepo{freeSpot: &domain.ParkingSpot{
		ID: 3, FloorNumber: 1, SpotNumber: 3, SpotType: domain.SpotTypeCompact,
	}}
	uc := newTestUseCase(&fakeVehicleRepo{}, spots, &fakeSessionRepo{}, nil, now)

	_, err := uc.Execute(context.Background(), &Request{
		LicensePlate: "AB123CD",
		SpotType:     domain.SpotTypeOversized,
	})
	assert.ErrorIs(t, err, ErrNoSpotAvailable)
}

func TestRegisterEntryValidation(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeVehicleRepo{}, &fakeSpotRepo{}, &fakeSessionRepo{}, nil, now)

	tests := []struct {
		name string
		req  *Request
	}{
		{"empty plate", &Request{LicensePlate: "   ", SpotType: domain.SpotTypeRegular}},
		{"plate too long", &Request{LicensePlate: "ABCDEFGHIJKLMNOPQ", SpotType: domain.SpotTypeRegular}},
		{"unknown spot type", &Request{LicensePlate: "AB123CD", SpotType: "boat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegisterEntryWithoutPublisher(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	spots := &fakeSpotRepo{freeSpot: &domain.ParkingSpot{
		ID: 3, FloorNumber: 1, SpotNumber: 9, SpotType: domain.SpotTypeRegular,
	}}
	uc := newTestUseCase(&fakeVehicleRepo{}, spots, &fakeSessionRepo{}, nil, now)

	// Выключенная публикация событий не мешает въезду
	resp, err := uc.Execute(context.Background(), &Request{
		LicensePlate: "AB123CD",
		SpotType:     domain.SpotTypeRegular,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.SessionID)
}
