// Package config provides YAML- and TOML-based configuration loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Validator is an interface for configuration validation.
type Validator interface {
	Validate() error
}

// Load loads configuration from a YAML (.yaml, .yml) or TOML (.toml) file.
// Values are decoded verbatim. Keys absent from the file leave the
// corresponding fields of target untouched.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, target)
	case ".toml":
		err = toml.Unmarshal(data, target)
	default:
		return fmt.Errorf("config file %s: %w: %q", filename, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	return nil
}

// FindFirst returns the first of names that exists as a file in dir.
func FindFirst(dir string, names ...string) (string, error) {
	for _, name := range names {
		p := filepath.Join(dir, name)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("config file not found in %s (tried %s): %w", dir, strings.Join(names, ", "), os.ErrNotExist)
}
