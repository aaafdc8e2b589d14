package get_monthly_report

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/analytics"
)

type AnalyticsService interface {
	GetRevenueByMonth(ctx context.Context) ([]analytics.MonthlyRevenue, error)
	GetMonthlyParkingUsage(ctx context.Context) ([]analytics.MonthlyUsage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
