package security

import "go.uber.org/zap/zapcore"

// Severity represents the severity level of a security event
// This is derived from EventType, NOT user-provided
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

// Administrative events
const (
	EventRoleModified EventType = "role_modified"
	EventDataExport   EventType = "data_export"
)

// EventSeverityMap defines the hard-coded severity for each event type
var EventSeverityMap = map[EventType]Severity{
	// INFO - Normal operations
	EventSessionIssued: SeverityINFO,

	// MEDIUM - Notable but not urgent
	EventDataExport:   SeverityMEDIUM,
	EventMissingToken: SeverityMEDIUM,

	// WARN - Potential issues, monitor
	EventInvalidToken:       SeverityWARN,
	EventRateLimitTriggered: SeverityWARN,
	EventRoleDenied:         SeverityWARN,

	// HIGH - Active threats or significant changes
	EventIdentityMismatch: SeverityHIGH,
	EventRoleModified:     SeverityHIGH,
}

// GetSeverity returns the severity for an event type
// If the event type is not mapped, defaults to MEDIUM
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

// IsHighOrAbove returns true if the event is HIGH severity
func IsHighOrAbove(eventType EventType) bool {
	return GetSeverity(eventType) == SeverityHIGH
}

// levelFor picks the zap level an event is written at.
func levelFor(eventType EventType) zapcore.Level {
	if IsHighOrAbove(eventType) {
		return zapcore.ErrorLevel
	}
	switch GetSeverity(eventType) {
	case SeverityINFO, SeverityMEDIUM:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}
