package register_exit

import "errors"

var (
	// ErrInvalidInput возвращается при пустом госномере
	ErrInvalidInput = errors.New("register_exit: invalid input data")

	// ErrVehicleNotFound возвращается, когда для госномера нет
	// открытой сессии
	ErrVehicleNotFound = errors.New("register_exit: no open session for this plate")

	// ErrConflict возвращается, когда конфликт конкурентных выездов не
	// удалось разрешить повторами
	ErrConflict = errors.New("register_exit: concurrency conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_exit: internal error")
)
