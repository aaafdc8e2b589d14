package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthString(t *testing.T) {
	ts := time.Date(2026, 3, 17, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, MonthString("2026-03"), NewMonthString(ts))
}

func TestNewMonthStringFromString(t *testing.T) {
	m, err := NewMonthStringFromString("2026-03")
	require.NoError(t, err)
	assert.Equal(t, "2026-03", m.String())

	_, err = NewMonthStringFromString("2026-3")
	assert.Error(t, err)

	_, err = NewMonthStringFromString("март 2026")
	assert.Error(t, err)
}

func TestMonthStringTime(t *testing.T) {
	m := MonthString("2026-03")
	ts, err := m.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), ts)
}

func TestMonthStringBefore(t *testing.T) {
	assert.True(t, MonthString("2025-12").Before(MonthString("2026-01")))
	assert.False(t, MonthString("2026-02").Before(MonthString("2026-01")))
	assert.False(t, MonthString("2026-01").Before(MonthString("2026-01")))
}
