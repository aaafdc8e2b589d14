package register_entry

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустой госномер, неизвестный тип места)
	ErrInvalidInput = errors.New("register_entry: invalid input data")

	// ErrAlreadyParked возвращается, когда у автомобиля уже есть
	// открытая сессия
	ErrAlreadyParked = errors.New("register_entry: vehicle is already parked")

	// ErrNoSpotAvailable возвращается, когда нет свободного места
	// запрошенного типа
	ErrNoSpotAvailable = errors.New("register_entry: no spot of requested type available")

	// ErrConflict возвращается, когда конфликт конкурентных въездов не
	// удалось разрешить повторами - вызывающий может повторить запрос
	ErrConflict = errors.New("register_entry: concurrency conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_entry: internal error")
)
