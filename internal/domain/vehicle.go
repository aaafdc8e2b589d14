package domain

import (
	"strings"
	"time"
)

// Vehicle represents a vehicle known to the lot.
// License plates are the uniqueness key; descriptive attributes are
// refreshed on every re-entry.
type Vehicle struct {
	ID           int64
	LicensePlate string // Нормализованный госномер (trim + upper)
	Color        string
	Brand        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizePlate приводит госномер к каноническому виду:
// обрезает пробелы и переводит в верхний регистр.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
