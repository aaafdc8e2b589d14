package register_exit

import (
	"time"

	registerExit "github.com/m04kA/SMC-ParkingService/internal/usecase/register_exit"
)

// RegisterExitRequest HTTP request model
type RegisterExitRequest struct {
	LicensePlate string `json:"licensePlate"`
}

// ExitResponse итог оплаты по закрытой сессии
type ExitResponse struct {
	SessionID     int64   `json:"sessionId"`
	LicensePlate  string  `json:"licensePlate"`
	EntryTime     string  `json:"entryTime"`
	ExitTime      string  `json:"exitTime"`
	DurationHours float64 `json:"durationHours"`
	BillableHours float64 `json:"billableHours"`
	AmountDue     float64 `json:"amountDue"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterExitRequest) ToUseCaseRequest() *registerExit.Request {
	return &registerExit.Request{
		LicensePlate: r.LicensePlate,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerExit.Response) *ExitResponse {
	return &ExitResponse{
		SessionID:     resp.SessionID,
		LicensePlate:  resp.LicensePlate,
		EntryTime:     resp.EntryTime.Format(time.RFC3339),
		ExitTime:      resp.ExitTime.Format(time.RFC3339),
		DurationHours: resp.DurationHours,
		BillableHours: resp.BillableHours,
		AmountDue:     resp.AmountDue,
	}
}
