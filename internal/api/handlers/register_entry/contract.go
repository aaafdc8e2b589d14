package register_entry

import (
	"context"

	registerEntry "github.com/m04kA/SMC-ParkingService/internal/usecase/register_entry"
)

type RegisterEntryUseCase interface {
	Execute(ctx context.Context, req *registerEntry.Request) (*registerEntry.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
