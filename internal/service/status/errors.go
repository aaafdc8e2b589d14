package status

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения из хранилища
	ErrInternal = errors.New("status.service: internal error")
)
