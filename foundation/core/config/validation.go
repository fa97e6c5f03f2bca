// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules
//              covering required keys, value types, allowed values and
//              non-empty strings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-14
// Modified: 2025-10-14
//
// Change History:
// - 2025-10-14 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"sort"
	"strings"

	szerror "github.com/msto63/stringz/foundation/core/error"
	szerrors "github.com/msto63/stringz/foundation/core/errors"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string", "int" or "bool"
	OneOf    []string // Allowed values, compared case-insensitively
	NonEmpty bool     // Rejects the empty string
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into an INVALID_CONFIG error, or nil
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return szerrors.NewErrorBuilder(szerrors.ModuleConfig).
		Operation("validate").
		Messagef("invalid configuration: %s", strings.Join(r.Errors, "; ")).
		Code(szerror.CodeInvalidConfig).
		Detail("errors", r.Errors).
		Build()
}

// Validate validates the configuration against the provided rules.
// Environment overrides are taken into account. Errors are reported in
// key order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	var value interface{}
	if envValue, ok := c.getEnvValue(key); ok {
		value = envValue
	} else {
		value = c.getValue(key)
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if s, ok := value.(string); ok {
		if rule.NonEmpty && s == "" {
			return fmt.Errorf("field '%s' must not be empty", key)
		}
		if len(rule.OneOf) > 0 && !containsFold(rule.OneOf, s) {
			return fmt.Errorf("field '%s' must be one of [%s], got %q", key, strings.Join(rule.OneOf, ", "), s)
		}
	}
	return nil
}

func validateType(key string, value interface{}, expectedType string) error {
	ok := false
	switch expectedType {
	case "string":
		_, ok = value.(string)
	case "int":
		switch value.(type) {
		case int, int64:
			ok = true
		}
	case "bool":
		_, ok = value.(bool)
	default:
		return fmt.Errorf("field '%s' has unknown rule type %q", key, expectedType)
	}

	if !ok {
		return fmt.Errorf("field '%s' must be a %s, got %T", key, expectedType, value)
	}
	return nil
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
