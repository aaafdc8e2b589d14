package status

// FloorStatus занятость одного этажа
type FloorStatus struct {
	Floor     int `json:"floor"`
	Total     int `json:"total"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

// Snapshot агрегированный статус парковки.
// OccupancyRate в процентах [0,100]; 0 при отсутствии мест.
type Snapshot struct {
	TotalSpots     int           `json:"totalSpots"`
	OccupiedSpots  int           `json:"occupiedSpots"`
	AvailableSpots int           `json:"availableSpots"`
	OccupancyRate  float64       `json:"occupancyRate"`
	Floors         []FloorStatus `json:"floors"`
}
