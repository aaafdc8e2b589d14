package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakeSessionRepo struct {
	records    []domain.SessionRecord
	lastFilter domain.SessionListFilter
}

func (f *fakeSessionRepo) List(_ context.Context, filter domain.SessionListFilter) ([]domain.SessionRecord, error) {
	f.lastFilter = filter

	var out []domain.SessionRecord
	for _, rec := range f.records {
		if filter.Status != nil && rec.Session.Status != *filter.Status {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openRecord(id int64, entry time.Time, rate float64) domain.SessionRecord {
	return domain.SessionRecord{
		Session: domain.ParkingSession{
			ID: id, EntryTime: entry, HourlyRate: rate, Status: domain.StatusOpen,
		},
		Vehicle: domain.Vehicle{LicensePlate: "AB123CD", Color: "red", Brand: "toyota"},
		Spot:    domain.ParkingSpot{FloorNumber: 1, SpotNumber: 9, SpotType: domain.SpotTypeRegular},
	}
}

func closedRecord(id int64, entry time.Time, hours float64, amount float64) domain.SessionRecord {
	exit := entry.Add(time.Duration(hours * float64(time.Hour)))
	return domain.SessionRecord{
		Session: domain.ParkingSession{
			ID: id, EntryTime: entry, ExitTime: &exit, HourlyRate: 5.0,
			AmountPaid: &amount, Status: domain.StatusClosed,
		},
		Vehicle: domain.Vehicle{LicensePlate: "XY777XY"},
		Spot:    domain.ParkingSpot{FloorNumber: 2, SpotNumber: 25, SpotType: domain.SpotTypeCompact},
	}
}

func TestGetActiveSessions(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	now := entry.Add(30 * time.Minute)
	repo := &fakeSessionRepo{records: []domain.SessionRecord{
		openRecord(1, entry, 5.0),
		closedRecord(2, entry.Add(-24*time.Hour), 2.0, 10.0),
	}}
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}

	views, err := svc.GetActiveSessions(context.Background(), domain.SessionListFilter{})
	require.NoError(t, err)

	// Закрытая сессия отфильтрована на уровне репозитория
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusOpen, *repo.lastFilter.Status)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "open", view.Status)
	assert.Nil(t, view.AmountPaid)
	// 30 минут стоянки оцениваются по минимальному порогу
	require.NotNil(t, view.PotentialRevenue)
	assert.InDelta(t, 5.0, *view.PotentialRevenue, 1e-9)
}

func TestGetActiveSessionsPassesFilter(t *testing.T) {
	repo := &fakeSessionRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetActiveSessions(context.Background(), domain.SessionListFilter{
		Color: ptr.Ptr("red"),
		Floor: ptr.Ptr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, "red", *repo.lastFilter.Color)
	assert.Equal(t, 2, *repo.lastFilter.Floor)
	assert.Equal(t, domain.StatusOpen, *repo.lastFilter.Status)
}

func TestGetAllSessionsForDashboard(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{records: []domain.SessionRecord{
		openRecord(1, entry, 5.0),
		closedRecord(2, entry.Add(-24*time.Hour), 2.0, 10.0),
	}}
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: entry.Add(time.Hour)}

	views, err := svc.GetAllSessionsForDashboard(context.Background(), domain.SessionListFilter{})
	require.NoError(t, err)
	require.Len(t, views, 2)

	// У закрытой сессии заполнен amountPaid, у открытой - potentialRevenue
	assert.Nil(t, views[0].AmountPaid)
	assert.NotNil(t, views[0].PotentialRevenue)
	require.NotNil(t, views[1].AmountPaid)
	assert.Equal(t, 10.0, *views[1].AmountPaid)
	assert.Nil(t, views[1].PotentialRevenue)
}

func TestPotentialRevenue(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	now := entry.Add(2 * time.Hour)
	repo := &fakeSessionRepo{records: []domain.SessionRecord{
		openRecord(1, entry, 5.0),                    // 2h * 5.0 = 10.0
		openRecord(2, entry.Add(100*time.Minute), 5), // 20 минут -> минимум 5.0
	}}
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}

	total, err := svc.PotentialRevenue(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 15.0, total, 1e-9)
}
