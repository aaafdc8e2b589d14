package analytics

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// sumRevenue суммирует amount_paid закрытых сессий.
// Открытые сессии (без amount_paid) не учитываются.
func sumRevenue(records []domain.SessionRecord) float64 {
	total := 0.0
	for _, rec := range records {
		if rec.Session.IsClosed() && rec.Session.AmountPaid != nil {
			total += *rec.Session.AmountPaid
		}
	}
	return total
}

// averageDurationHours средняя длительность закрытых сессий в часах.
// 0, если закрытых сессий нет.
func averageDurationHours(records []domain.SessionRecord) float64 {
	total := 0.0
	count := 0
	for _, rec := range records {
		if rec.Session.IsClosed() && rec.Session.ExitTime != nil {
			total += rec.Session.ExitTime.Sub(rec.Session.EntryTime).Hours()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// groupRevenueByMonth группирует выручку закрытых сессий по
// календарному месяцу entry_time (UTC), сортировка по месяцу
func groupRevenueByMonth(records []domain.SessionRecord) []MonthlyRevenue {
	byMonth := make(map[types.MonthString]float64)
	for _, rec := range records {
		if !rec.Session.IsClosed() || rec.Session.AmountPaid == nil {
			continue
		}
		month := types.NewMonthString(rec.Session.EntryTime)
		byMonth[month] += *rec.Session.AmountPaid
	}

	result := make([]MonthlyRevenue, 0, len(byMonth))
	for month, revenue := range byMonth {
		result = append(result, MonthlyRevenue{
			Month:        month,
			TotalRevenue: domain.RoundCurrency(revenue),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month.Before(result[j].Month)
	})

	return result
}

// groupUsageByMonth группирует число закрытых сессий по календарному
// месяцу entry_time (UTC)
func groupUsageByMonth(records []domain.SessionRecord) []MonthlyUsage {
	byMonth := make(map[types.MonthString]int)
	for _, rec := range records {
		if !rec.Session.IsClosed() {
			continue
		}
		byMonth[types.NewMonthString(rec.Session.EntryTime)]++
	}

	result := make([]MonthlyUsage, 0, len(byMonth))
	for month, count := range byMonth {
		result = append(result, MonthlyUsage{
			Month:        month,
			SessionCount: count,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month.Before(result[j].Month)
	})

	return result
}

// revenueClosedSince суммирует amount_paid сессий, закрытых не раньше
// cutoff
func revenueClosedSince(records []domain.SessionRecord, cutoff time.Time) float64 {
	total := 0.0
	for _, rec := range records {
		if !rec.Session.IsClosed() || rec.Session.AmountPaid == nil || rec.Session.ExitTime == nil {
			continue
		}
		if rec.Session.ExitTime.Before(cutoff) {
			continue
		}
		total += *rec.Session.AmountPaid
	}
	return total
}

// startOfDayUTC полночь UTC дня, в котором лежит t
func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
