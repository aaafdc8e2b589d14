// Package queue определяет события въезда/выезда и публикатор,
// отправляющий их в RabbitMQ. Публикация выполняется после коммита
// транзакции и никогда не валит основной запрос - ошибки только
// логируются и возвращаются вызывающему.
package queue

import "time"

// Имена очередей (durable)
const (
	QueueVehicleEntered = "parking.entry"
	QueueVehicleExited  = "parking.exit"
)

// VehicleEnteredEvent событие въезда автомобиля
type VehicleEnteredEvent struct {
	SessionID    int64     `json:"sessionId"`
	LicensePlate string    `json:"licensePlate"`
	SpotNumber   int       `json:"spotNumber"`
	Floor        int       `json:"floor"`
	SpotType     string    `json:"spotType"`
	EntryTime    time.Time `json:"entryTime"`
	HourlyRate   float64   `json:"hourlyRate"`
}

// VehicleExitedEvent событие выезда автомобиля
type VehicleExitedEvent struct {
	SessionID     int64     `json:"sessionId"`
	LicensePlate  string    `json:"licensePlate"`
	ExitTime      time.Time `json:"exitTime"`
	DurationHours float64   `json:"durationHours"`
	AmountDue     float64   `json:"amountDue"`
}
