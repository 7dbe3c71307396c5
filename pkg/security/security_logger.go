package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventMissingToken       EventType = "missing_token"
	EventInvalidToken       EventType = "invalid_token"
	EventRoleDenied         EventType = "role_denied"
	EventIdentityMismatch   EventType = "identity_mismatch"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventSessionIssued      EventType = "session_issued"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Event     EventType
	Email     string // masked before it is written
	IP        string
	UserAgent string
	RequestID string
	Path      string
	Details   map[string]interface{}
}

// SecurityLogger writes security events as structured zap entries.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewSecurityLogger builds a production zap logger writing to stdout.
func NewSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return WithZap(logger, serviceName, environment)
}

// WithZap wraps an existing zap logger, e.g. zaptest or zap.NewNop in tests.
func WithZap(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Log logs a security event
func (sl *SecurityLogger) Log(_ context.Context, event SecurityEvent) {
	if sl == nil {
		return
	}

	severity := GetSeverity(event.Event)

	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(severity)),
		zap.Time("occurred_at", time.Now().UTC()),
	}
	if event.Email != "" {
		fields = append(fields, zap.String("subject", MaskEmail(event.Email)), zap.String("subject_hash", HashValue(event.Email)))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.Path != "" {
		fields = append(fields, zap.String("path", event.Path))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	sl.zapLogger.Log(levelFor(event.Event), string(event.Event), fields...)
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	if sl == nil {
		return nil
	}
	return sl.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// HashValue creates a short SHA256 fingerprint so events for one subject can be correlated.
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(strings.ToLower(value)))
	return hex.EncodeToString(hash[:8])
}
