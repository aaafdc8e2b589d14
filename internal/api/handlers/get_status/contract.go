package get_status

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/status"
)

type StatusService interface {
	GetParkingStatus(ctx context.Context) (*status.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
