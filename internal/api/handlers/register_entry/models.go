package register_entry

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	registerEntry "github.com/m04kA/SMC-ParkingService/internal/usecase/register_entry"
)

// RegisterEntryRequest HTTP request model
type RegisterEntryRequest struct {
	LicensePlate string `json:"licensePlate"`
	Color        string `json:"color"`
	Brand        string `json:"brand"`
	SpotType     string `json:"spotType,omitempty"` // по умолчанию regular
}

// EntryResponse HTTP response model
type EntryResponse struct {
	SessionID  int64       `json:"sessionId"`
	EntryTime  string      `json:"entryTime"`
	HourlyRate float64     `json:"hourlyRate"`
	Vehicle    VehicleInfo `json:"vehicle"`
	Spot       SpotInfo    `json:"parkingSpot"`
}

// VehicleInfo снапшот автомобиля
type VehicleInfo struct {
	LicensePlate string `json:"licensePlate"`
	Color        string `json:"color"`
	Brand        string `json:"brand"`
}

// SpotInfo снапшот назначенного места
type SpotInfo struct {
	SpotNumber int    `json:"spotNumber"`
	Floor      int    `json:"floor"`
	SpotType   string `json:"spotType"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterEntryRequest) ToUseCaseRequest() (*registerEntry.Request, error) {
	spotType := domain.SpotTypeRegular
	if r.SpotType != "" {
		parsed, err := domain.ParseSpotType(r.SpotType)
		if err != nil {
			return nil, err
		}
		spotType = parsed
	}

	return &registerEntry.Request{
		LicensePlate: r.LicensePlate,
		Color:        r.Color,
		Brand:        r.Brand,
		SpotType:     spotType,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerEntry.Response) *EntryResponse {
	return &EntryResponse{
		SessionID:  resp.SessionID,
		EntryTime:  resp.EntryTime.Format(time.RFC3339),
		HourlyRate: resp.HourlyRate,
		Vehicle: VehicleInfo{
			LicensePlate: resp.Vehicle.LicensePlate,
			Color:        resp.Vehicle.Color,
			Brand:        resp.Vehicle.Brand,
		},
		Spot: SpotInfo{
			SpotNumber: resp.Spot.SpotNumber,
			Floor:      resp.Spot.Floor,
			SpotType:   string(resp.Spot.SpotType),
		},
	}
}
