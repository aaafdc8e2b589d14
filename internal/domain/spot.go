package domain

import "fmt"

// SpotType represents the category of a parking spot.
// A vehicle entry request must name the type it wants.
type SpotType string

const (
	SpotTypeCompact   SpotType = "compact"
	SpotTypeRegular   SpotType = "regular"
	SpotTypeHandicap  SpotType = "handicap"
	SpotTypeOversized SpotType = "oversized"
)

// SpotTypes список всех типов мест в порядке отображения
var SpotTypes = []SpotType{
	SpotTypeCompact,
	SpotTypeRegular,
	SpotTypeHandicap,
	SpotTypeOversized,
}

// ParseSpotType validates a raw spot type string.
func ParseSpotType(s string) (SpotType, error) {
	switch SpotType(s) {
	case SpotTypeCompact, SpotTypeRegular, SpotTypeHandicap, SpotTypeOversized:
		return SpotType(s), nil
	default:
		return "", fmt.Errorf("unknown spot type %q", s)
	}
}

// Floor represents one level of the lot. Floors are materialized once
// at provisioning and never change afterwards.
type Floor struct {
	FloorNumber int
	TotalSpots  int
}

// ParkingSpot represents a single spot on a floor.
// SpotNumber is unique across the whole lot. The occupancy flag is
// toggled by entry/exit; spots are never destroyed.
type ParkingSpot struct {
	ID          int64
	FloorNumber int
	SpotNumber  int
	SpotType    SpotType
	IsOccupied  bool
}

// SpotTypeForNumber returns the spot type for position n (1-based) on a
// floor with perFloor spots. The mix is deterministic so provisioning is
// reproducible: the first 10% are handicap, the next 30% compact, the
// last 10% oversized, everything in between regular.
func SpotTypeForNumber(n, perFloor int) SpotType {
	if perFloor <= 0 {
		return SpotTypeRegular
	}
	handicap := perFloor / 10
	if handicap < 1 {
		handicap = 1
	}
	compact := perFloor * 3 / 10
	oversized := perFloor / 10

	switch {
	case n <= handicap:
		return SpotTypeHandicap
	case n <= handicap+compact:
		return SpotTypeCompact
	case n > perFloor-oversized:
		return SpotTypeOversized
	default:
		return SpotTypeRegular
	}
}

// FloorOccupancy aggregated per-floor counters for the status snapshot.
type FloorOccupancy struct {
	FloorNumber int
	Total       int
	Occupied    int
}

// Available returns the number of free spots on the floor.
func (f *FloorOccupancy) Available() int {
	return f.Total - f.Occupied
}

// OccupancyRate returns the occupancy rate as a percentage (0-100).
// Returns 0 when there are no spots at all.
func OccupancyRate(occupied, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(occupied) / float64(total) * 100
}
