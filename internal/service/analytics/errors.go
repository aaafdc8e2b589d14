package analytics

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном окне отчета
	ErrInvalidInput = errors.New("analytics.service: invalid input data")

	// ErrInternal возвращается при ошибках чтения из хранилища
	ErrInternal = errors.New("analytics.service: internal error")
)
