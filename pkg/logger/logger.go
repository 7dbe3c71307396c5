package logger

import (
	"context"
	"log/slog"
	"os"
)

var Log = slog.Default()

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	emailKey     contextKey = "email"
)

func Init(environment string) {
	level := slog.LevelDebug
	if environment == "production" {
		level = slog.LevelInfo
	}
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// FromContext returns Log enriched with the request id and caller email found in ctx.
func FromContext(ctx context.Context) *slog.Logger {
	l := Log
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		l = l.With("request_id", id)
	}
	if email, ok := ctx.Value(emailKey).(string); ok && email != "" {
		l = l.With("email", email)
	}
	return l
}
