// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the logger can map a
//              failure to an appropriate log level.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-10-14 v0.1.1: Severity mapping for the stringz code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a bad argument
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unreadable config file
	SeverityHigh

	// SeverityCritical indicates a broken internal invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidArgument, CodeMissingArgument, CodeNotFound, CodeMissingConfig:
		return SeverityLow
	case CodeInvalidPattern:
		// The escaper should make this unreachable
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
