package register_entry

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на регистрацию въезда
type Request struct {
	LicensePlate string          // Госномер (нормализуется внутри usecase)
	Color        string          // Цвет автомобиля
	Brand        string          // Марка автомобиля
	SpotType     domain.SpotType // Запрошенный тип места
}

// Response модель ответа с открытой сессией и снапшотами
// автомобиля и назначенного места
type Response struct {
	SessionID  int64
	EntryTime  time.Time
	HourlyRate float64

	Vehicle VehicleInfo
	Spot    SpotInfo
}

// VehicleInfo снапшот автомобиля для отображения
type VehicleInfo struct {
	LicensePlate string
	Color        string
	Brand        string
}

// SpotInfo снапшот назначенного места для отображения
type SpotInfo struct {
	SpotNumber int
	Floor      int
	SpotType   domain.SpotType
}
