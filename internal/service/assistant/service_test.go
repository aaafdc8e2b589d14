package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-ParkingService/internal/service/status"
)

type fakeStatusProvider struct {
	snapshot *status.Snapshot
}

func (f *fakeStatusProvider) GetParkingStatus(_ context.Context) (*status.Snapshot, error) {
	return f.snapshot, nil
}

type fakeSessionReader struct {
	views      []models.SessionView
	lastFilter domain.SessionListFilter
}

func (f *fakeSessionReader) GetActiveSessions(_ context.Context, filter domain.SessionListFilter) ([]models.SessionView, error) {
	f.lastFilter = filter

	var out []models.SessionView
	for _, v := range f.views {
		if filter.Color != nil && v.Vehicle.Color != *filter.Color {
			continue
		}
		if filter.Brand != nil && v.Vehicle.Brand != *filter.Brand {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

type fakeRevenueProvider struct {
	revenue    float64
	lastWindow time.Duration
}

func (f *fakeRevenueProvider) RevenueSince(_ context.Context, window time.Duration) (float64, error) {
	f.lastWindow = window
	return f.revenue, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func parkedView(color, brand string) models.SessionView {
	return models.SessionView{
		Status:  string(domain.StatusOpen),
		Vehicle: models.VehicleView{Color: color, Brand: brand},
	}
}

func newTestService(views []models.SessionView) (*Service, *fakeSessionReader, *fakeRevenueProvider) {
	statusProvider := &fakeStatusProvider{snapshot: &status.Snapshot{
		TotalSpots: 60, OccupiedSpots: 3, AvailableSpots: 57, OccupancyRate: 5.0,
		Floors: []status.FloorStatus{
			{Floor: 1, Total: 20, Occupied: 3, Available: 17},
			{Floor: 2, Total: 20, Occupied: 0, Available: 20},
			{Floor: 3, Total: 20, Occupied: 0, Available: 20},
		},
	}}
	reader := &fakeSessionReader{views: views}
	revenue := &fakeRevenueProvider{revenue: 42.5}
	return New(statusProvider, reader, revenue, nopLogger{}), reader, revenue
}

func TestAnswerStatus(t *testing.T) {
	svc, _, _ := newTestService(nil)

	answer, err := svc.Answer(context.Background(), "what is the parking status?")
	require.NoError(t, err)
	assert.Equal(t, "The parking lot has 60 spots, 3 occupied and 57 available (5.0% occupancy).", answer)
}

func TestAnswerAvailability(t *testing.T) {
	svc, _, _ := newTestService(nil)

	answer, err := svc.Answer(context.Background(), "how many spots are available?")
	require.NoError(t, err)
	assert.Equal(t, "There are 57 available spots out of 60.", answer)
}

func TestAnswerCountByColor(t *testing.T) {
	svc, reader, _ := newTestService([]models.SessionView{
		parkedView("red", "toyota"),
		parkedView("red", "honda"),
		parkedView("blue", "ford"),
	})

	answer, err := svc.Answer(context.Background(), "how many red cars are parked?")
	require.NoError(t, err)
	assert.Equal(t, "There are 2 red vehicles currently parked.", answer)
	require.NotNil(t, reader.lastFilter.Color)
	assert.Equal(t, "red", *reader.lastFilter.Color)
}

func TestAnswerCountByBrandSingular(t *testing.T) {
	svc, _, _ := newTestService([]models.SessionView{
		parkedView("red", "toyota"),
	})

	answer, err := svc.Answer(context.Background(), "how many toyota cars do we have?")
	require.NoError(t, err)
	assert.Equal(t, "There is 1 toyota currently parked.", answer)
}

func TestAnswerColorDistribution(t *testing.T) {
	svc, _, _ := newTestService([]models.SessionView{
		parkedView("red", "toyota"),
		parkedView("red", "honda"),
		parkedView("blue", "ford"),
	})

	answer, err := svc.Answer(context.Background(), "show the color distribution")
	require.NoError(t, err)
	assert.Equal(t, "2 red, 1 blue.", answer)
}

func TestAnswerFloorDistribution(t *testing.T) {
	svc, _, _ := newTestService(nil)

	answer, err := svc.Answer(context.Background(), "distribution by floor please")
	require.NoError(t, err)
	assert.Equal(t, "floor 1: 3/20 occupied, floor 2: 0/20 occupied, floor 3: 0/20 occupied.", answer)
}

func TestAnswerRevenueWindow(t *testing.T) {
	svc, _, revenue := newTestService(nil)

	answer, err := svc.Answer(context.Background(), "how much revenue in the last 6 hours?")
	require.NoError(t, err)
	assert.Equal(t, "Revenue for the last 6 hours is $42.50.", answer)
	assert.Equal(t, 6*time.Hour, revenue.lastWindow)
}

func TestAnswerUnknownReturnsHelp(t *testing.T) {
	svc, _, _ := newTestService(nil)

	answer, err := svc.Answer(context.Background(), "tell me a joke")
	require.NoError(t, err)
	assert.Equal(t, helpAnswer, answer)
}

func TestAnswerEmptyQuestion(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.Answer(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestAnswerEmptyLotDistribution(t *testing.T) {
	svc, _, _ := newTestService(nil)

	answer, err := svc.Answer(context.Background(), "brand breakdown")
	require.NoError(t, err)
	assert.Equal(t, "The parking lot is empty.", answer)
}
