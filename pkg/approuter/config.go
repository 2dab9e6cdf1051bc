package approuter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/approuter/pkg/approuter/constants"
	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
	"github.com/BrandonKowalski/approuter/pkg/approuter/router"
)

// Config is the contents of an approuter TOML config file.
//
//	[log]
//	level = "debug"
//	path = "logs/approuter.log"
//
//	[navigation]
//	default_presentation = "sheet(navigable)"
//	default_tab_behavior = "popToRootIfRepeated"
//
//	[inspect]
//	language = "de"
type Config struct {
	Log        LogConfig        `toml:"log"`
	Navigation NavigationConfig `toml:"navigation"`
	Inspect    InspectConfig    `toml:"inspect"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// NavigationConfig holds router defaults. Both fields decode from their text
// form, e.g. "link(autoPop)" or "popToRoot".
type NavigationConfig struct {
	DefaultPresentation router.Presentation `toml:"default_presentation"`
	DefaultTabBehavior  router.TabBehavior  `toml:"default_tab_behavior"`
}

type InspectConfig struct {
	Language string `toml:"language"`
}

// LanguageTag returns the configured inspect language, falling back to
// English when unset or unparseable.
func (c InspectConfig) LanguageTag() language.Tag {
	raw := c.Language
	if raw == "" {
		raw = constants.DefaultLanguage
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.English
	}
	return tag
}

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() Config {
	return Config{
		Log:        LogConfig{Level: "error"},
		Navigation: NavigationConfig{DefaultPresentation: router.DefaultPresentation, DefaultTabBehavior: router.KeepState},
		Inspect:    InspectConfig{Language: constants.DefaultLanguage},
	}
}

// LoadConfig reads a TOML config file on top of DefaultConfig.
// Keys approuter does not know are rejected with ErrUnknownConfigKey.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, &ConfigError{Op: "decode", Path: path, Err: err}
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, &ConfigError{Op: "decode", Path: path, Err: err}
	}
	return cfg, nil
}

// ParseConfig decodes TOML text on top of DefaultConfig.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, &ConfigError{Op: "decode", Err: err}
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, &ConfigError{Op: "decode", Err: err}
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, key := range undecoded {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	return fmt.Errorf("%w: %s", ErrUnknownConfigKey, strings.Join(keys, ", "))
}

// StackConfig returns a router config carrying the navigation defaults of cfg
// and the shared logger. Callers fill in Content and OnTransition.
func StackConfig[S comparable, C any](cfg Config) router.Config[S, C] {
	return router.Config[S, C]{
		DefaultPresentation: cfg.Navigation.DefaultPresentation,
		Logger:              internal.GetLogger(),
	}
}

// TabConfig returns a tab router config carrying the navigation defaults of
// cfg and the shared logger. Callers fill in NewStackRouter and OnTransition.
func TabConfig[T comparable, S comparable, C any](cfg Config) router.TabConfig[T, S, C] {
	return router.TabConfig[T, S, C]{
		DefaultBehavior: cfg.Navigation.DefaultTabBehavior,
		Logger:          internal.GetLogger(),
	}
}
