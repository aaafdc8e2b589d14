package get_sessions

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestParseFilter(t *testing.T) {
	query := url.Values{}
	query.Set("color", "red")
	query.Set("brand", "toyota")
	query.Set("floor", "2")
	query.Set("enteredAfter", "2026-03-10T08:00:00Z")
	query.Set("status", "closed")

	filter, err := ParseFilter(query)
	require.NoError(t, err)

	assert.Equal(t, "red", *filter.Color)
	assert.Equal(t, "toyota", *filter.Brand)
	assert.Equal(t, 2, *filter.Floor)
	assert.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), *filter.EnteredAfter)
	assert.Equal(t, domain.StatusClosed, *filter.Status)
}

func TestParseFilterEmpty(t *testing.T) {
	filter, err := ParseFilter(url.Values{})
	require.NoError(t, err)

	assert.Nil(t, filter.Color)
	assert.Nil(t, filter.Brand)
	assert.Nil(t, filter.Floor)
	assert.Nil(t, filter.EnteredAfter)
	assert.Nil(t, filter.Status)
}

func TestParseFilterInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"bad floor", "floor", "ground", errInvalidFloor},
		{"zero floor", "floor", "0", errInvalidFloor},
		{"bad timestamp", "enteredAfter", "вчера", errInvalidEnteredAfter},
		{"bad status", "status", "parked", errInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			query.Set(tt.key, tt.value)

			_, err := ParseFilter(query)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
