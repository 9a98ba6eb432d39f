package core

import "strings"

// Severity classifies a log message and decides where it goes and what
// happens after it is written
type Severity int8

const (
	// Info for general informational messages
	Info Severity = iota
	// WarnNoAck for warnings that do not require user interaction
	WarnNoAck
	// WarnAck for warnings that block on a [y/N] confirmation; declining
	// terminates the process with exit code 255
	WarnAck
	// Error for fatal errors; logging at this severity terminates the process
	Error
)

// String returns the on-the-wire prefix of the severity. WarnNoAck and
// WarnAck share the WARN prefix; they differ only in what happens after
// the line is written.
func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case WarnNoAck, WarnAck:
		return "WARN"
	case Error:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "info":
		return Info
	case "warn", "warning", "warn-noack":
		return WarnNoAck
	case "warn-ack", "ack":
		return WarnAck
	case "error", "fail":
		return Error
	default:
		return Info
	}
}
