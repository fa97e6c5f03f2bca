// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for the config module covering TOML/YAML parsing,
//              environment variable overrides, defaults, discovery and
//              validation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-14
// Modified: 2025-10-14
//
// Change History:
// - 2025-10-14 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	szerror "github.com/msto63/stringz/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "stringz.toml", `
[log]
level = "debug"
format = "json"

[pad]
char = "-"
width = 12
strict = true
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if level := cfg.GetString("log.level"); level != "debug" {
			t.Errorf("Expected level 'debug', got '%s'", level)
		}
		if char := cfg.GetString("pad.char"); char != "-" {
			t.Errorf("Expected pad char '-', got '%s'", char)
		}
		if width := cfg.GetInt("pad.width"); width != 12 {
			t.Errorf("Expected width 12, got %d", width)
		}
		if strict := cfg.GetBool("pad.strict"); !strict {
			t.Errorf("Expected strict true, got %v", strict)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Expected format toml, got %s", cfg.Format())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "stringz.yaml", `
log:
  level: info
  format: logfmt
pad:
  char: "."
  width: 8
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if level := cfg.GetString("log.level"); level != "info" {
			t.Errorf("Expected level 'info', got '%s'", level)
		}
		if width := cfg.GetInt("pad.width"); width != 8 {
			t.Errorf("Expected width 8, got %d", width)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Expected format yaml, got %s", cfg.Format())
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "missing.toml"))
		if !szerror.HasCode(err, szerror.CodeMissingConfig) {
			t.Errorf("Expected MISSING_CONFIG, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !szerror.HasCode(err, szerror.CodeMissingConfig) {
			t.Errorf("Expected MISSING_CONFIG, got %v", err)
		}
	})

	t.Run("malformed content", func(t *testing.T) {
		path := writeFile(t, tempDir, "broken.toml", "[log\nlevel = ")
		_, err := Load(path)
		if !szerror.HasCode(err, szerror.CodeInvalidConfig) {
			t.Errorf("Expected INVALID_CONFIG, got %v", err)
		}
	})
}

func TestEnvironmentVariables(t *testing.T) {
	cfg := New(LoadOptions{
		EnvPrefix: "stringz",
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{"level": "warn"},
			"pad": map[string]interface{}{"width": 4, "strict": false},
		},
	})

	if key := cfg.EnvKey("log.level"); key != "STRINGZ_LOG_LEVEL" {
		t.Errorf("Expected env key STRINGZ_LOG_LEVEL, got %s", key)
	}

	t.Setenv("STRINGZ_LOG_LEVEL", "trace")
	t.Setenv("STRINGZ_PAD_WIDTH", "9")
	t.Setenv("STRINGZ_PAD_STRICT", "true")

	if level := cfg.GetString("log.level"); level != "trace" {
		t.Errorf("Expected env override 'trace', got '%s'", level)
	}
	if width := cfg.GetInt("pad.width"); width != 9 {
		t.Errorf("Expected env override 9, got %d", width)
	}
	if strict := cfg.GetBool("pad.strict"); !strict {
		t.Error("Expected env override true")
	}

	t.Setenv("STRINGZ_PAD_WIDTH", "wide")
	if width := cfg.GetInt("pad.width"); width != 4 {
		t.Errorf("Expected unparsable override to fall back to 4, got %d", width)
	}

	t.Setenv("STRINGZ_LOG_LEVEL", "")
	if level := cfg.GetString("log.level"); level != "warn" {
		t.Errorf("Expected empty override to be ignored, got '%s'", level)
	}
}

func TestDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "partial.toml", `
[log]
format = "console"
`)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{"level": "warn", "format": "text"},
			"pad": map[string]interface{}{"char": " "},
		},
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if format := cfg.GetString("log.format"); format != "console" {
		t.Errorf("Expected file value 'console', got '%s'", format)
	}
	if level := cfg.GetString("log.level"); level != "warn" {
		t.Errorf("Expected nested default 'warn', got '%s'", level)
	}
	if char := cfg.GetString("pad.char"); char != " " {
		t.Errorf("Expected default pad char, got %q", char)
	}
	if missing := cfg.GetString("nope.key", "fallback"); missing != "fallback" {
		t.Errorf("Expected fallback, got '%s'", missing)
	}
	if missing := cfg.GetInt("nope.key", 7); missing != 7 {
		t.Errorf("Expected fallback 7, got %d", missing)
	}
}

func TestHasSetAndKeys(t *testing.T) {
	cfg, err := LoadFromString("[log]\nlevel = \"info\"\n", FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.Has("log.level") || cfg.Has("log.format") {
		t.Error("Has() reports wrong presence")
	}

	cfg.Set("log.format", "json")
	cfg.Set("pad.char", "*")

	if format := cfg.GetString("log.format"); format != "json" {
		t.Errorf("Expected 'json' after Set, got '%s'", format)
	}

	expected := "log.format,log.level,pad.char"
	if keys := strings.Join(cfg.Keys(), ","); keys != expected {
		t.Errorf("Keys() = %s; want %s", keys, expected)
	}
}

func TestLoadFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"TOML string", "[pad]\nchar = \"#\"\n", FormatTOML},
		{"YAML string", "pad:\n  char: \"#\"\n", FormatYAML},
		{"auto defaults to TOML", "[pad]\nchar = \"#\"\n", FormatAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}
			if char := cfg.GetString("pad.char"); char != "#" {
				t.Errorf("Expected '#', got '%s'", char)
			}
		})
	}

	if _, err := LoadFromString("pad: [unclosed", FormatYAML); !szerror.HasCode(err, szerror.CodeInvalidConfig) {
		t.Errorf("Expected INVALID_CONFIG for bad YAML, got %v", err)
	}
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"CONFIG.YML", FormatYAML},
		{"config", FormatTOML},
		{"config.conf", FormatTOML},
	}

	for _, test := range tests {
		t.Run(test.filename, func(t *testing.T) {
			if got := detectFormat(test.filename); got != test.expected {
				t.Errorf("detectFormat(%s) = %s; want %s", test.filename, got, test.expected)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	options := DiscoveryOptions{
		Paths:      []string{dir},
		Filenames:  []string{"stringz"},
		Extensions: []string{".toml", ".yaml"},
		Defaults:   map[string]interface{}{"pad": map[string]interface{}{"char": " "}},
	}

	t.Run("optional and missing", func(t *testing.T) {
		cfg, err := Discover(options)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.FilePath() != "" {
			t.Errorf("Expected no file, got %s", cfg.FilePath())
		}
		if char := cfg.GetString("pad.char"); char != " " {
			t.Errorf("Expected default pad char, got %q", char)
		}
	})

	t.Run("required and missing", func(t *testing.T) {
		required := options
		required.Required = true
		_, err := Discover(required)
		if !szerror.HasCode(err, szerror.CodeMissingConfig) {
			t.Errorf("Expected MISSING_CONFIG, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		path := writeFile(t, dir, "stringz.yaml", "pad:\n  char: \"_\"\n")
		cfg, err := Discover(options)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.FilePath() != path {
			t.Errorf("Expected %s, got %s", path, cfg.FilePath())
		}
		if char := cfg.GetString("pad.char"); char != "_" {
			t.Errorf("Expected '_', got %q", char)
		}
	})

	t.Run("candidate order", func(t *testing.T) {
		candidates := ListPossibleConfigFiles(options)
		if len(candidates) != 2 || !strings.HasSuffix(candidates[0], "stringz.toml") {
			t.Errorf("unexpected candidates %v", candidates)
		}
	})
}

func TestValidate(t *testing.T) {
	rules := ValidationRules{
		"log.level":  {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
		"log.format": {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
		"pad.char":   {Type: "string", NonEmpty: true},
		"pad.width":  {Type: "int"},
	}

	tests := []struct {
		name    string
		content string
		valid   bool
		errors  int
	}{
		{"valid", "[log]\nlevel = \"INFO\"\nformat = \"json\"\n[pad]\nchar = \"-\"\nwidth = 3\n", true, 0},
		{"empty is fine", "", true, 0},
		{"bad level", "[log]\nlevel = \"loud\"\n", false, 1},
		{"empty pad char", "[pad]\nchar = \"\"\n", false, 1},
		{"wrong type", "[pad]\nwidth = \"three\"\nchar = 5\n", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, FormatTOML)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}

			result := cfg.Validate(rules)
			if result.Valid != tt.valid || len(result.Errors) != tt.errors {
				t.Errorf("Validate() = %v %v; want valid=%v with %d errors", result.Valid, result.Errors, tt.valid, tt.errors)
			}

			err = result.Err()
			if tt.valid && err != nil {
				t.Errorf("Err() = %v; want nil", err)
			}
			if !tt.valid && !szerror.HasCode(err, szerror.CodeInvalidConfig) {
				t.Errorf("Err() = %v; want INVALID_CONFIG", err)
			}
		})
	}

	t.Run("required", func(t *testing.T) {
		cfg := New(LoadOptions{})
		result := cfg.Validate(ValidationRules{"log.level": {Required: true}})
		if result.Valid {
			t.Error("Expected missing required key to fail")
		}
	})
}

func BenchmarkGetString(b *testing.B) {
	cfg, err := LoadFromString("[log]\nlevel = \"info\"\n", FormatTOML)
	if err != nil {
		b.Fatalf("Failed to load config: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetString("log.level")
	}
}
