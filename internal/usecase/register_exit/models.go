package register_exit

import "time"

// Request модель запроса на регистрацию выезда
type Request struct {
	LicensePlate string // Госномер (нормализуется внутри usecase)
}

// Response итог оплаты по закрытой сессии.
// DurationHours - фактическая длительность без округления;
// BillableHours - после применения минимального порога;
// AmountDue округлен до валютной точности в момент отчета.
type Response struct {
	SessionID     int64
	LicensePlate  string
	EntryTime     time.Time
	ExitTime      time.Time
	DurationHours float64
	BillableHours float64
	AmountDue     float64
}
