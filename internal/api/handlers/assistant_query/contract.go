package assistant_query

import "context"

type AssistantService interface {
	Answer(ctx context.Context, question string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
