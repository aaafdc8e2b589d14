package get_sessions

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

var (
	errInvalidFloor        = errors.New("get_sessions: invalid floor")
	errInvalidEnteredAfter = errors.New("get_sessions: invalid enteredAfter")
	errInvalidStatus       = errors.New("get_sessions: invalid status")
)

// SessionsResponse полная история сессий
type SessionsResponse struct {
	Sessions []models.SessionView `json:"sessions"`
	Count    int                  `json:"count"`
}

// ParseFilter разбирает query-параметры: color, brand, floor,
// enteredAfter (RFC3339), status (open|closed)
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
	if rawStatus := query.Get("status"); rawStatus != "" {
		switch rawStatus {
		case string(domain.StatusOpen):
			filter.Status = ptr.Ptr(domain.StatusOpen)
		case string(domain.StatusClosed):
			filter.Status = ptr.Ptr(domain.StatusClosed)
		default:
			return filter, errInvalidStatus
		}
	}

	return filter, nil
}
