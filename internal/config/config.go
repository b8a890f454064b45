package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validation errors returned by Validate. Callers match them with errors.Is.
var (
	// ErrMissingSource indicates that no output source path was supplied.
	ErrMissingSource = errors.New("missing required option: --source")
	// ErrMissingFunction indicates that no accessor function name was supplied.
	ErrMissingFunction = errors.New("missing required option: --function")
	// ErrNoInputFiles indicates that the input file list is empty.
	ErrNoInputFiles = errors.New("no input files given")
)

// Config represents one generator invocation: one accessor function over one
// ordered set of input files. It can be populated from CLI flags, from a
// YAML manifest, or from both (flags win).
type Config struct {
	// Function is the identifier of the generated accessor function.
	Function string `yaml:"function"`
	// Source is the destination path for the generated C source artifact.
	Source string `yaml:"source"`
	// Header is the destination path for the generated header artifact.
	// Empty means no header is emitted.
	Header string `yaml:"header"`
	// PreservePaths keeps the full input path as the lookup key instead of
	// stripping it to the final path component.
	PreservePaths bool `yaml:"preserve_paths"`
	// Files is the ordered list of input file paths. Order determines the
	// emission order and the table indices of the generated artifact.
	Files []string `yaml:"files"`
	// Logging configures diagnostic output.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Load parses a YAML manifest into a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge applies non-zero values from override on top of cfg. The override
// holds what the CLI flags supplied; explicit flags always win over the
// manifest, and positional arguments replace the manifest file list
// entirely rather than appending to it.
func Merge(cfg *Config, override *Config) {
	if override.Function != "" {
		cfg.Function = override.Function
	}
	if override.Source != "" {
		cfg.Source = override.Source
	}
	if override.Header != "" {
		cfg.Header = override.Header
	}
	if override.PreservePaths {
		cfg.PreservePaths = true
	}
	if len(override.Files) > 0 {
		cfg.Files = override.Files
	}
	if override.Logging.Level != "" {
		cfg.Logging.Level = override.Logging.Level
	}
	if override.Logging.Path != "" {
		cfg.Logging.Path = override.Logging.Path
	}
}

// Validate checks that cfg describes a runnable invocation. It runs before
// any output file is created, so a failed invocation never touches the
// destination paths.
func Validate(cfg *Config) error {
	if cfg.Source == "" {
		return ErrMissingSource
	}
	if cfg.Function == "" {
		return ErrMissingFunction
	}
	if !isValidIdentifier(cfg.Function) {
		return fmt.Errorf("invalid accessor function name %q: must be a valid C identifier", cfg.Function)
	}
	if len(cfg.Files) == 0 {
		return ErrNoInputFiles
	}
	return nil
}

// isValidIdentifier reports whether s is a valid C identifier. Rejecting
// bad names here beats emitting a source file that cannot compile.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
