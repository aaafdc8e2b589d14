package domain

// Default configuration values (applied when config.toml omits them)
const (
	DefaultHourlyRate    = 5.0
	DefaultFloors        = 3
	DefaultSpotsPerFloor = 20
)

// Billing constants
const (
	// MinBillableHours минимальная оплачиваемая длительность стоянки.
	// Применяется даже к более коротким сессиям - это тарифная политика,
	// а не округление.
	MinBillableHours = 1.0

	// CurrencyPrecision число знаков после запятой при выводе сумм
	CurrencyPrecision = 2
)

// Business validation constants
const (
	MaxLicensePlateLength = 16
	MaxColorLength        = 32
	MaxBrandLength        = 64
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
