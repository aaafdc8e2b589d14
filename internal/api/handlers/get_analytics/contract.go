package get_analytics

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/analytics"
)

type AnalyticsService interface {
	GetParkingAnalytics(ctx context.Context) (*analytics.Overview, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
