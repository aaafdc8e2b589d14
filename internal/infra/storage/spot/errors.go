package spot

import "errors"

var (
	// ErrSpotNotFound возвращается, когда место не найдено
	ErrSpotNotFound = errors.New("spot.repository: spot not found")

	// ErrNoFreeSpot возвращается, когда нет свободного места нужного типа
	ErrNoFreeSpot = errors.New("spot.repository: no free spot of requested type")

	// ErrSpotStateConflict возвращается, когда флаг занятости уже
	// находится в запрашиваемом состоянии (нарушение инварианта)
	ErrSpotStateConflict = errors.New("spot.repository: spot occupancy state conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("spot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("spot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("spot.repository: failed to scan row")
)
