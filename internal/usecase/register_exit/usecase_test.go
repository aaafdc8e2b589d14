package register_exit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/session"
	"github.com/m04kA/SMC-ParkingService/internal/queue"
)

// --- Фейки ---

type fakeSpotRepo struct {
	freedID int64
	freed   bool
}

func (f *fakeSpotRepo) SetOccupied(_ context.Context, id int64, occupied bool) error {
	f.freedID = id
	f.freed = !occupied
	return nil
}

type fakeSessionRepo struct {
	openSession   *domain.ParkingSession
	alreadyClosed bool

	closedID     int64
	closedAt     time.Time
	closedAmount float64
}

func (f *fakeSessionRepo) GetOpenByPlate(_ context.Context, plate string) (*domain.ParkingSession, error) {
	if f.openSession == nil {
		return nil, sessionRepo.ErrSessionNotFound
	}
	session := *f.openSession
	return &session, nil
}

func (f *fakeSessionRepo) Close(_ context.Context, id int64, exitTime time.Time, amountPaid float64) error {
	if f.alreadyClosed {
		return sessionRepo.ErrSessionAlreadyClosed
	}
	f.closedID = id
	f.closedAt = exitTime
	f.closedAmount = amountPaid
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	events []queue.VehicleExitedEvent
}

func (f *fakePublisher) PublishVehicleExited(_ context.Context, event queue.VehicleExitedEvent) error {
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

func newTestUseCase(spots *fakeSpotRepo, sessions *fakeSessionRepo, pub *fakePublisher, now time.Time) *UseCase {
	var publisher EventPublisher
	if pub != nil {
		publisher = pub
	}
	uc := NewUseCase(spots, sessions, fakeTxManager{}, publisher, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestRegisterExitSuccess(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	now := entry.Add(150 * time.Minute)
	spots := &fakeSpotRepo{}
	sessions := &fakeSessionRepo{openSession: &domain.ParkingSession{
		ID: 42, VehicleID: 7, SpotID: 3,
		EntryTime: entry, HourlyRate: 5.0, Status: domain.StatusOpen,
	}}
	publisher := &fakePublisher{}
	uc := newTestUseCase(spots, sessions, publisher, now)

	resp, err := uc.Execute(context.Background(), &Request{LicensePlate: " ab123cd "})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.SessionID)
	assert.Equal(t, "AB123CD", resp.LicensePlate)
	assert.InDelta(t, 2.5, resp.DurationHours, 1e-9)
	assert.InDelta(t, 2.5, resp.BillableHours, 1e-9)
	assert.InDelta(t, 12.5, resp.AmountDue, 1e-9)

	// Сессия закрыта и место освобождено атомарно
	assert.Equal(t, int64(42), sessions.closedID)
	assert.Equal(t, now, sessions.closedAt)
	assert.Equal(t, int64(3), spots.freedID)
	assert.True(t, spots.freed)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "AB123CD", publisher.events[0].LicensePlate)
}

func TestRegisterExitMinimumBilling(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	// Стоянка 20 минут - оплата как за час
	now := entry.Add(20 * time.Minute)
	sessions := &fakeSessionRepo{openSession: &domain.ParkingSession{
		ID: 42, SpotID: 3, EntryTime: entry, HourlyRate: 5.0, Status: domain.StatusOpen,
	}}
	uc := newTestUseCase(&fakeSpotRepo{}, sessions, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{LicensePlate: "AB123CD"})
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3.0, resp.DurationHours, 1e-9)
	assert.InDelta(t, 1.0, resp.BillableHours, 1e-9)
	assert.InDelta(t, 5.0, resp.AmountDue, 1e-9)
}

func TestRegisterExitVehicleNotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeSpotRepo{}, &fakeSessionRepo{}, nil, now)

	_, err := uc.Execute(context.Background(), &Request{LicensePlate: "ZZ999ZZ"})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestRegisterExitConcurrentClose(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	now := entry.Add(time.Hour)
	spots := &fakeSpotRepo{}
	// Между чтением сессии и закрытием ее успел закрыть другой запрос
	sessions := &fakeSessionRepo{
		openSession: &domain.ParkingSession{
			ID: 42, SpotID: 3, EntryTime: entry, HourlyRate: 5.0, Status: domain.StatusOpen,
		},
		alreadyClosed: true,
	}
	uc := newTestUseCase(spots, sessions, nil, now)

	_, err := uc.Execute(context.Background(), &Request{LicensePlate: "AB123CD"})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.False(t, spots.freed)
}

func TestRegisterExitEmptyPlate(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeSpotRepo{}, &fakeSessionRepo{}, nil, now)

	_, err := uc.Execute(context.Background(), &Request{LicensePlate: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
