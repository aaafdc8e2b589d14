package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpotType(t *testing.T) {
	for _, st := range SpotTypes {
		parsed, err := ParseSpotType(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}

	_, err := ParseSpotType("motorcycle")
	assert.Error(t, err)

	_, err = ParseSpotType("")
	assert.Error(t, err)
}

func TestSpotTypeForNumber(t *testing.T) {
	// Этаж на 20 мест: 2 handicap, 6 compact, 10 regular, 2 oversized
	const perFloor = 20

	expected := map[int]SpotType{
		1:  SpotTypeHandicap,
		2:  SpotTypeHandicap,
		3:  SpotTypeCompact,
		8:  SpotTypeCompact,
		9:  SpotTypeRegular,
		18: SpotTypeRegular,
		19: SpotTypeOversized,
		20: SpotTypeOversized,
	}

	for n, want := range expected {
		assert.Equal(t, want, SpotTypeForNumber(n, perFloor), "spot %d", n)
	}
}

func TestSpotTypeForNumberSmallFloor(t *testing.T) {
	// Даже на крошечном этаже есть хотя бы одно handicap место
	assert.Equal(t, SpotTypeHandicap, SpotTypeForNumber(1, 5))
	// Деградация на некорректный размер
	assert.Equal(t, SpotTypeRegular, SpotTypeForNumber(1, 0))
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(0, 0))
	assert.Equal(t, 0.0, OccupancyRate(0, 60))
	assert.Equal(t, 50.0, OccupancyRate(30, 60))
	assert.Equal(t, 100.0, OccupancyRate(60, 60))
}

func TestFloorOccupancyAvailable(t *testing.T) {
	f := FloorOccupancy{FloorNumber: 1, Total: 20, Occupied: 7}
	assert.Equal(t, 13, f.Available())
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "AB123CD", NormalizePlate("  ab123cd "))
	assert.Equal(t, "AB123CD", NormalizePlate("AB123CD"))
	assert.Equal(t, "", NormalizePlate("   "))
}
