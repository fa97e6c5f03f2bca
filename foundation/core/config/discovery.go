// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for a configuration file and
//              loads the first match. When nothing is found and the file is
//              optional, a configuration holding only the defaults is
//              returned.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-14
// Modified: 2025-10-14
//
// Change History:
// - 2025-10-14 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"

	szerror "github.com/msto63/stringz/foundation/core/error"
	szerrors "github.com/msto63/stringz/foundation/core/errors"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns discovery options for an application:
// <name>.toml|yaml|yml in the working directory, then config.* in the
// user config directory under <name>/
func DefaultDiscoveryOptions(name string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, name))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{name, "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover finds and loads the first configuration file in options
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(LoadOptions{EnvPrefix: options.EnvPrefix, Defaults: options.Defaults}), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", szerrors.NewErrorBuilder(szerrors.ModuleConfig).
		Operation("discover").
		Message("configuration file not found").
		Code(szerror.CodeMissingConfig).
		Detail("searchPaths", candidates).
		Build()
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}
