package types

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// MonthString строка месяца в формате "YYYY-MM" (UTC).
// Используется как ключ группировки в месячной аналитике.
type MonthString string

// NewMonthString returns the month key for the given moment in UTC.
func NewMonthString(t time.Time) MonthString {
	return MonthString(t.UTC().Format(monthLayout))
}

// NewMonthStringFromString parses and validates a raw "YYYY-MM" value.
func NewMonthStringFromString(s string) (MonthString, error) {
	if _, err := time.Parse(monthLayout, s); err != nil {
		return "", fmt.Errorf("invalid month string %q: %w", s, err)
	}
	return MonthString(s), nil
}

// String returns the raw "YYYY-MM" value.
func (m MonthString) String() string {
	return string(m)
}

// Time returns midnight UTC of the first day of the month.
func (m MonthString) Time() (time.Time, error) {
	return time.Parse(monthLayout, string(m))
}

// Before reports whether m is an earlier month than other.
// Lexicographic comparison is correct for the fixed layout.
func (m MonthString) Before(other MonthString) bool {
	return string(m) < string(other)
}
