package journal

import (
	"errors"
	"strings"
	"time"
)

// Severity classifies an entry for display emphasis.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Severities lists the recognized levels in escalation order.
var Severities = []Severity{SeverityNormal, SeverityWarning, SeverityCritical}

// ErrInvalidStatus is returned when Append is called with an unrecognized
// severity. Nothing is written in that case.
var ErrInvalidStatus = errors.New("journal: invalid status")

// ErrMalformedRecord marks a persisted line that could not be parsed. It is
// recoverable: ReadDay skips the line and keeps going.
var ErrMalformedRecord = errors.New("journal: malformed record")

// Entry is one immutable log record. The timestamp is assigned by the store
// at append time.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	System    string    `json:"system"`
	Status    Severity  `json:"status"`
	Message   string    `json:"message"`
}

// ParseSeverity validates operator input strictly: only the three recognized
// levels are accepted (case-insensitively).
func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityNormal:
		return SeverityNormal, nil
	case SeverityWarning:
		return SeverityWarning, nil
	case SeverityCritical:
		return SeverityCritical, nil
	}
	return "", ErrInvalidStatus
}

// NormalizeSeverity maps persisted severity spellings to a recognized level.
// It is deliberately lenient: the read path must cope with records written
// by earlier versions of the tool, which used display labels such as
// "Alert" and "Critical".
func NormalizeSeverity(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NORMAL", "OK", "INFO", "NOMINAL":
		return SeverityNormal
	case "WARNING", "WARN", "ALERT", "CAUTION":
		return SeverityWarning
	case "CRITICAL", "CRIT", "FATAL", "ERROR", "EMERGENCY":
		return SeverityCritical
	default:
		return SeverityNormal
	}
}
