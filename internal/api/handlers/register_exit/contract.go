package register_exit

import (
	"context"

	registerExit "github.com/m04kA/SMC-ParkingService/internal/usecase/register_exit"
)

type RegisterExitUseCase interface {
	Execute(ctx context.Context, req *registerExit.Request) (*registerExit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
