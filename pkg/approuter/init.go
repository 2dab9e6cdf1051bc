// Package approuter provides declarative navigation state for tree-structured
// user interfaces: stack routers that push, pop, replace and re-root screen
// state, and tab routers that coordinate one stack per tab.
//
// The navigation model lives in the router subpackage. This package handles
// logging setup and the optional TOML configuration that supplies router
// defaults.
package approuter

import (
	"log/slog"
	"os"
	"sync"

	"github.com/BrandonKowalski/approuter/pkg/approuter/constants"
	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
)

// Options configures approuter initialization.
type Options struct {
	LogPath    string // Full path for log file including filename (creates parent directories)
	LogLevel   string // "debug", "info", "warn" or "error"; overrides the config file
	ConfigPath string // TOML config file; falls back to APPROUTER_CONFIG
}

var (
	configMu      sync.RWMutex
	currentConfig = DefaultConfig()
)

// Init loads configuration and sets up logging. Calling Init is optional;
// routers work with DefaultConfig and an error-level logger without it.
// If APPROUTER_DEBUG is set or APPROUTER_ENV is dev, the log level is forced
// to debug.
//
// The log file is opened the first time anything logs, so Init must run before
// the first router is created for a log path to take effect. A path that
// arrives later is ignored with a warning.
func Init(options Options) error {
	cfg := DefaultConfig()

	configPath := options.ConfigPath
	if configPath == "" {
		configPath = os.Getenv(constants.ConfigPathEnvVar)
	}
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if options.LogPath != "" {
		cfg.Log.Path = options.LogPath
	}
	if options.LogLevel != "" {
		cfg.Log.Level = options.LogLevel
	}
	pathApplied := true
	if cfg.Log.Path != "" {
		pathApplied = internal.SetLogPath(cfg.Log.Path)
	}

	if os.Getenv(constants.DebugEnvVar) != "" || constants.IsDevMode() {
		internal.SetLogLevel(slog.LevelDebug)
	} else {
		internal.SetLogLevel(internal.ParseLevel(cfg.Log.Level))
	}
	if !pathApplied {
		GetLogger().Warn("log path ignored, logger already in use", "path", cfg.Log.Path)
	}

	configMu.Lock()
	currentConfig = cfg
	configMu.Unlock()

	GetLogger().Debug("approuter initialized",
		"config", configPath,
		"default_presentation", cfg.Navigation.DefaultPresentation.String(),
		"default_tab_behavior", cfg.Navigation.DefaultTabBehavior.String())
	return nil
}

// CurrentConfig returns the configuration applied by the last Init, or
// DefaultConfig if Init was never called.
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return currentConfig
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// It reports false if the logger was already in use, in which case the path
// is ignored. Call before Init or before the first router is created.
func SetLogPath(path string) bool {
	return internal.SetLogPath(path)
}

// GetLogger returns the logger routers write to.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetLogLevel(internal.ParseLevel(level))
}
