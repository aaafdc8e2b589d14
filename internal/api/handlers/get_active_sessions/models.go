package get_active_sessions

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// ActiveSessionsResponse список открытых сессий с суммарной
// потенциальной выручкой
type ActiveSessionsResponse struct {
	Sessions         []models.SessionView `json:"sessions"`
	Count            int                  `json:"count"`
	PotentialRevenue float64              `json:"potentialRevenue"`
}

// ParseFilter разбирает query-параметры дашборда и ассистента:
// color, brand, floor, enteredAfter (RFC3339)
func ParseFilter(query url.Values) (domain.SessionListFilter, error) {
	var filter domain.SessionListFilter

	if color := query.Get("color"); color != "" {
		filter.Color = ptr.Ptr(color)
	}
	if brand := query.Get("brand"); brand != "" {
		filter.Brand = ptr.Ptr(brand)
	}
	if rawFloor := query.Get("floor"); rawFloor != "" {
		floor, err := strconv.Atoi(rawFloor)
		if err != nil || floor < 1 {
			return filter, errInvalidFloor
		}
		filter.Floor = ptr.Ptr(floor)
	}
	if rawAfter := query.Get("enteredAfter"); rawAfter != "" {
		after, err := time.Parse(time.RFC3339, rawAfter)
		if err != nil {
			return filter, errInvalidEnteredAfter
		}
		filter.EnteredAfter = ptr.Ptr(after.UTC())
	}

	return filter, nil
}
