package assistant

import "errors"

var (
	// ErrEmptyQuestion - пустой вопрос
	ErrEmptyQuestion = errors.New("assistant: empty question")
	// ErrInternal - внутренняя ошибка при чтении данных
	ErrInternal = errors.New("assistant: internal error")
)
