package analytics

import "github.com/m04kA/SMC-ParkingService/pkg/types"

// Overview сводные показатели за текущий UTC-день
type Overview struct {
	TodayRevenue         float64 `json:"todayRevenue"`
	TodayVehicles        int     `json:"todayVehicles"`
	AverageDurationHours float64 `json:"averageDurationHours"`
	CurrentOccupancy     int     `json:"currentOccupancy"`
}

// MonthlyRevenue выручка за календарный месяц (ключ - месяц
// entry_time, UTC). Месяцы без активности не эмитятся - заполнение
// нулями для плотной оси остается на вызывающем.
type MonthlyRevenue struct {
	Month        types.MonthString `json:"month"`
	TotalRevenue float64           `json:"totalRevenue"`
}

// MonthlyUsage число сессий за календарный месяц
type MonthlyUsage struct {
	Month        types.MonthString `json:"month"`
	SessionCount int               `json:"sessionCount"`
}
