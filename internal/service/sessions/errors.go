package sessions

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения из хранилища
	ErrInternal = errors.New("sessions.service: internal error")
)
