package logger

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const requestIDCtxKey ctxKey = 0

const requestIDKey = "request_id"

// WithRequestID returns a context carrying the given request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, id)
}

// RequestIDFrom returns the request id carried by the context, or "".
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDCtxKey).(string); ok {
		return id
	}
	return ""
}

// EnsureRequestID returns a context that carries a request id, generating
// one when the context has none.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIDFrom(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
