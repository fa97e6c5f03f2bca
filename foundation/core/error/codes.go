// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures in the string
//              library, the extension registry, configuration loading and the
//              command line front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-14 v0.2.0: Reduced to the codes raised by stringz

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input handling
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidPattern  Code = "INVALID_PATTERN"
	CodeMissingArgument Code = "MISSING_ARGUMENT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeInvalidPattern, CodeMissingArgument,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeInvalidPattern, CodeMissingArgument:
		return "input"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeNotFound:
		return "lookup"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input", "lookup":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
