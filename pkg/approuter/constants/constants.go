// Package constants defines environment variables and defaults shared by the
// approuter packages.
package constants

import (
	"os"
	"strings"
)

// EnvironmentEnvVar selects the runtime environment. Development mode turns on
// debug logging during Init, like DebugEnvVar.
const EnvironmentEnvVar = "APPROUTER_ENV"

// Development is the EnvironmentEnvVar value for development mode.
const Development = "dev"

// DebugEnvVar forces debug logging during Init when set to any value.
const DebugEnvVar = "APPROUTER_DEBUG"

// ConfigPathEnvVar names a TOML config file to load when Options.ConfigPath is empty.
const ConfigPathEnvVar = "APPROUTER_CONFIG"

// DefaultLanguage is the language used for inspect reports when none is configured.
const DefaultLanguage = "en"

// IsDevMode reports whether APPROUTER_ENV is set to dev, ignoring case.
func IsDevMode() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(EnvironmentEnvVar)), Development)
}
