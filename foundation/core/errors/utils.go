// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Module-scoped helpers on top of core/error. Every error built
//              here records the module and operation in its details so the
//              logger and the CLI can report where a failure came from.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-10-14 v0.2.0: Helpers for the stringz library and extension registry

package errors

import (
	"errors"
	"fmt"

	szerror "github.com/msto63/stringz/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringz  = "stringz"
	ModuleRegistry = "registry"
	ModuleConfig   = "config"
	ModuleCLI      = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module      string
	operation   string
	message     string
	cause       error
	details     map[string]interface{}
	severity    szerror.Severity
	severitySet bool
	code        szerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    szerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity szerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code szerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *szerror.Error {
	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *szerror.Error
	if eb.cause != nil {
		err = szerror.Wrap(eb.cause, message)
	} else {
		err = szerror.New(message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severitySet {
		err = err.WithSeverity(eb.severity)
	}
	return err
}

// InvalidArgument reports an argument value the operation cannot accept
func InvalidArgument(module, operation, argument string, value interface{}, expected string) *szerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid argument %s=%q: expected %s", argument, fmt.Sprint(value), expected).
		Code(szerror.CodeInvalidArgument).
		Detail("argument", argument).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}

// MissingArgument reports a required positional argument that was not supplied
func MissingArgument(module, operation, argument string, position int) *szerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("missing argument %s at position %d", argument, position).
		Code(szerror.CodeMissingArgument).
		Detail("argument", argument).
		Detail("position", position).
		Build()
}

// InvalidPattern reports a pattern the regular expression engine rejected
func InvalidPattern(module, operation, pattern string, cause error) *szerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid pattern %q", pattern).
		Cause(cause).
		Code(szerror.CodeInvalidPattern).
		Detail("pattern", pattern).
		Build()
}

// NotFound reports a lookup by name that found nothing
func NotFound(module, operation string, identifier interface{}) *szerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(szerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// OperationFailed wraps an unexpected failure of an operation
func OperationFailed(module, operation string, cause error) *szerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(szerror.CodeInternal).
		Build()
}

// ExtractDetails returns the details of a structured error, or nil
func ExtractDetails(err error) map[string]interface{} {
	var e *szerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule returns the module recorded on a structured error
func ExtractModule(err error) string {
	return detailString(err, "module")
}

// ExtractOperation returns the operation recorded on a structured error
func ExtractOperation(err error) string {
	return detailString(err, "operation")
}

// IsModuleOperation checks whether err was raised by module.operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

func detailString(err error, key string) string {
	if details := ExtractDetails(err); details != nil {
		if s, ok := details[key].(string); ok {
			return s
		}
	}
	return ""
}
