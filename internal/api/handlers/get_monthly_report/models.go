package get_monthly_report

import "github.com/m04kA/SMC-ParkingService/internal/service/analytics"

// MonthlyReportResponse выручка и число сессий по календарным
// месяцам. Месяцы без активности не эмитятся.
type MonthlyReportResponse struct {
	Revenue []analytics.MonthlyRevenue `json:"revenue"`
	Usage   []analytics.MonthlyUsage   `json:"usage"`
}
