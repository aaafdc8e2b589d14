package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SessionView сессия, аннотированная автомобилем и местом, в том
// виде, в котором ее читают дашборд и ассистент. Денежные значения
// округлены до валютной точности в момент формирования view.
type SessionView struct {
	SessionID  int64      `json:"sessionId"`
	Status     string     `json:"status"`
	EntryTime  time.Time  `json:"entryTime"`
	ExitTime   *time.Time `json:"exitTime,omitempty"`
	HourlyRate float64    `json:"hourlyRate"`

	// Длительность: для открытой сессии - от въезда до "сейчас",
	// для закрытой - финальная
	DurationHours float64 `json:"durationHours"`

	// AmountPaid заполнен только у закрытых сессий
	AmountPaid *float64 `json:"amountPaid,omitempty"`

	// PotentialRevenue заполнен только у открытых сессий: оценка
	// выручки при выезде "сейчас" (с минимальным порогом оплаты)
	PotentialRevenue *float64 `json:"potentialRevenue,omitempty"`

	Vehicle VehicleView `json:"vehicle"`
	Spot    SpotView    `json:"parkingSpot"`
}

// VehicleView снапшот автомобиля
type VehicleView struct {
	LicensePlate string `json:"licensePlate"`
	Color        string `json:"color"`
	Brand        string `json:"brand"`
}

// SpotView снапшот места
type SpotView struct {
	SpotNumber int    `json:"spotNumber"`
	Floor      int    `json:"floor"`
	SpotType   string `json:"spotType"`
}

// FromDomainRecord конвертирует domain-запись в view
func FromDomainRecord(rec domain.SessionRecord, now time.Time) SessionView {
	view := SessionView{
		SessionID:     rec.Session.ID,
		Status:        string(rec.Session.Status),
		EntryTime:     rec.Session.EntryTime,
		ExitTime:      rec.Session.ExitTime,
		HourlyRate:    rec.Session.HourlyRate,
		DurationHours: rec.Session.DurationHours(now),
		Vehicle: VehicleView{
			LicensePlate: rec.Vehicle.LicensePlate,
			Color:        rec.Vehicle.Color,
			Brand:        rec.Vehicle.Brand,
		},
		Spot: SpotView{
			SpotNumber: rec.Spot.SpotNumber,
			Floor:      rec.Spot.FloorNumber,
			SpotType:   string(rec.Spot.SpotType),
		},
	}

	if rec.Session.IsOpen() {
		potential := domain.RoundCurrency(rec.PotentialRevenue(now))
		view.PotentialRevenue = &potential
	} else if rec.Session.AmountPaid != nil {
		paid := domain.RoundCurrency(*rec.Session.AmountPaid)
		view.AmountPaid = &paid
	}

	return view
}

// FromDomainRecordList конвертирует список записей
func FromDomainRecordList(records []domain.SessionRecord, now time.Time) []SessionView {
	views := make([]SessionView, 0, len(records))
	for _, rec := range records {
		views = append(views, FromDomainRecord(rec, now))
	}
	return views
}
