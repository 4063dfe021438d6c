package config

import (
	"errors"
	"fmt"
)

// Sentinel errors, in the teacher's errors.go style.
var (
	// ErrConfigNotFound indicates a config file does not exist at the
	// expected path.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigRead indicates an I/O error reading an existing config file.
	ErrConfigRead = errors.New("failed to read config file")

	// ErrConfigParse indicates a YAML syntax error in the config file.
	ErrConfigParse = errors.New("config parse error")

	// ErrInvalidConfig indicates the configuration parsed but failed
	// validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPattern indicates a pattern string could not be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// ConfigValidationError reports exactly which field of which config
// file failed validation, and why.
type ConfigValidationError struct {
	Location string // dotted field path, e.g. "rules[2].argPatterns[0].decision"
	Value    string
	Message  string
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Location, e.Message, e.Value)
}

func (e *ConfigValidationError) Unwrap() error {
	return ErrInvalidConfig
}
