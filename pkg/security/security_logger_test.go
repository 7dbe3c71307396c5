package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("john@example.com"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Equal(t, "***@example.com", MaskEmail("j@example.com"))
}

func TestSecurityLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sl := WithZap(zap.New(core), "jobboard", "test")

	sl.Log(context.Background(), SecurityEvent{
		Event:     EventIdentityMismatch,
		Email:     "host@jobquest.dev",
		RequestID: "req-1",
		Path:      "/jobs/:email",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, string(EventIdentityMismatch), entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "h***@jobquest.dev", fields["subject"])
	assert.Equal(t, HashValue("HOST@jobquest.dev"), fields["subject_hash"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "HIGH", fields["severity"])
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.NotContains(t, fields, "ip")
}

func TestNilSecurityLogger(t *testing.T) {
	var sl *SecurityLogger
	assert.NotPanics(t, func() {
		sl.Log(context.Background(), SecurityEvent{Event: EventMissingToken})
		_ = sl.Sync()
	})
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, SeverityINFO, GetSeverity(EventSessionIssued))
	assert.Equal(t, SeverityWARN, GetSeverity(EventRoleDenied))
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventType("unmapped")))
	assert.True(t, IsHighOrAbove(EventRoleModified))
	assert.False(t, IsHighOrAbove(EventRateLimitTriggered))
}

func TestEventLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sl := WithZap(zap.New(core), "jobboard", "test")

	cases := []struct {
		event EventType
		level zapcore.Level
	}{
		{EventSessionIssued, zap.InfoLevel},
		{EventDataExport, zap.InfoLevel},
		{EventRoleDenied, zap.WarnLevel},
		{EventRoleModified, zap.ErrorLevel},
		{EventIdentityMismatch, zap.ErrorLevel},
	}
	for _, tc := range cases {
		sl.Log(context.Background(), SecurityEvent{Event: tc.event})
	}

	entries := logs.All()
	require.Len(t, entries, len(cases))
	for i, tc := range cases {
		assert.Equal(t, tc.level, entries[i].Level, string(tc.event))
	}
}
