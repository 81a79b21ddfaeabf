package utils

import "context"

type requestIDKey struct{}

// WithRequestID кладет идентификатор запроса в контекст
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext достает идентификатор запроса, пустая строка если его нет
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
