// Package net holds request-context helpers shared by transports
package net

import (
	"context"

	"cictt/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// WithRequestID stores id where chi's RequestID middleware would, and on the
// logger context so logger.C picks it up
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, id)
	return logger.WithRequest(ctx, id)
}

// RequestID returns the request id on ctx, or ""
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// EnsureRequestID returns ctx with a request id, minting a UUID when none is present
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestID(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
