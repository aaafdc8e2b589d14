package register_entry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	registerEntry "github.com/m04kA/SMC-ParkingService/internal/usecase/register_entry"
)

type fakeUseCase struct {
	resp *registerEntry.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *registerEntry.Request) (*registerEntry.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/entry", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	entry := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &registerEntry.Response{
		SessionID:  42,
		EntryTime:  entry,
		HourlyRate: 5.0,
		Vehicle:    registerEntry.VehicleInfo{LicensePlate: "AB123CD", Color: "red", Brand: "toyota"},
		Spot:       registerEntry.SpotInfo{SpotNumber: 9, Floor: 1, SpotType: domain.SpotTypeRegular},
	}}

	rec := doRequest(t, uc, `{"licensePlate":"ab123cd","color":"red","brand":"toyota"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp EntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.SessionID)
	assert.Equal(t, "2026-03-10T09:30:00Z", resp.EntryTime)
	assert.Equal(t, "AB123CD", resp.Vehicle.LicensePlate)
	assert.Equal(t, "regular", resp.Spot.SpotType)
}

func TestHandleInvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidSpotType(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"licensePlate":"AB123CD","spotType":"boat"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"already parked", registerEntry.ErrAlreadyParked, http.StatusConflict},
		{"no spot available", registerEntry.ErrNoSpotAvailable, http.StatusConflict},
		{"serialization conflict", registerEntry.ErrConflict, http.StatusConflict},
		{"invalid input", registerEntry.ErrInvalidInput, http.StatusBadRequest},
		{"internal", registerEntry.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, `{"licensePlate":"AB123CD"}`)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
