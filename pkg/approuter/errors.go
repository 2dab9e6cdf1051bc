package approuter

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration problems.
var (
	// ErrUnknownConfigKey indicates the config file contains keys approuter
	// does not understand, usually a typo.
	ErrUnknownConfigKey = errors.New("unknown config key")
)

// ConfigError is returned when loading or applying configuration fails.
// Navigation itself never fails; configuration is the only place approuter
// reports errors of its own.
type ConfigError struct {
	Op   string // Operation that failed (e.g., "decode", "open_log")
	Path string // Config file involved, if any
	Err  error  // Underlying error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("approuter: %s %s: %v", e.Op, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("approuter: %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("approuter: %s", e.Op)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
