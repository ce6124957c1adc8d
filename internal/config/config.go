// Package config loads the YAML configuration for the docmail CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mwellner/go-docmail/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidMarker   = errors.New("invalid section marker word")
	ErrInvalidColumn   = errors.New("invalid recipient column")
)

// MaxMarkerLength bounds marker words; anything longer is a mistake.
const MaxMarkerLength = 50

// columnPattern matches spreadsheet column letters (A, Z, AA, AMJ, ...).
var columnPattern = regexp.MustCompile(`^[A-Za-z]{1,3}$`)

// Config holds all configuration for template composition.
type Config struct {
	Markers    MarkersConfig    `yaml:"markers"`
	Output     OutputConfig     `yaml:"output"`
	Recipients RecipientsConfig `yaml:"recipients"`
}

// MarkersConfig overrides the section marker words. The === frame around
// each word is fixed; empty words keep the SUBJECT/BODY defaults.
type MarkersConfig struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = stdout)
}

// RecipientsConfig defines how recipient addresses are read from a
// spreadsheet export.
type RecipientsConfig struct {
	Column     string `yaml:"column"`     // Spreadsheet column letter (default: "A")
	SkipHeader bool   `yaml:"skipHeader"` // Skip the first row
}

// Validate checks marker words and the recipient column.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateMarker("markers.subject", c.Markers.Subject); err != nil {
		return err
	}
	if err := validateMarker("markers.body", c.Markers.Body); err != nil {
		return err
	}

	if col := c.Recipients.Column; col != "" && !columnPattern.MatchString(col) {
		return fmt.Errorf("%w: %s (must be 1-3 letters)", ErrInvalidColumn, col)
	}

	return nil
}

// validateMarker rejects marker words that could not survive the ===WORD===
// framing: whitespace would break the marker line, '=' would blur the frame.
func validateMarker(fieldName, word string) error {
	if word == "" {
		return nil
	}
	if len(word) > MaxMarkerLength {
		return fmt.Errorf("%w: %s exceeds %d chars", ErrInvalidMarker, fieldName, MaxMarkerLength)
	}
	if strings.ContainsAny(word, "= \t\n") {
		return fmt.Errorf("%w: %s contains whitespace or '='", ErrInvalidMarker, fieldName)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: default markers,
// stdout output, recipients in column A.
func DefaultConfig() *Config {
	return &Config{
		Recipients: RecipientsConfig{Column: "A"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteDefault writes the default configuration as YAML to the given path.
func WriteDefault(path string) error {
	data, err := yamlutil.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// SearchPaths returns the paths LoadConfig would try for a config name,
// in order. Used for error hints.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-docmail", name+ext))
		}
	}

	return paths
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-docmail/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, path := range tried {
		if fileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
