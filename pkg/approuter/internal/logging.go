package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/atomic"
)

var (
	logFile *os.File
	logPath string

	setupOnce   sync.Once
	output      io.Writer
	outputReady = atomic.NewBool(false)

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. It reports false and does
// nothing once the logger has been requested.
func SetLogPath(path string) bool {
	if outputReady.Load() {
		return false
	}
	logPath = path
	return true
}

func setupOutput() {
	setupOnce.Do(func() {
		defer outputReady.Store(true)

		output = os.Stderr
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}
		logFile = f
		output = io.MultiWriter(os.Stderr, logFile)
	})
}

// GetLogger returns the shared logger used by routers and the config loader.
// It starts at error level so that a library user sees nothing unless asked.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(slog.LevelError)

		setupOutput()

		logger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// ParseLevel maps a textual level to a slog level. Unknown values map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
