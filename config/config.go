// Package config resolves the settings that govern live output display.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/jmgilman/go/errors"
)

// Setting keys, as seen by every Source.
const (
	KeyDisplayOutput = "shell.SPAWN_DISPLAY_OUTPUT"
	KeyDepthLimit    = "shell.SPAWN_DEPTH_LIMIT"
)

// Default values used when no source provides a key.
const (
	DefaultDisplayOutput = "1"
	DefaultDepthLimit    = 1
)

// EnvPrefix is prepended to keys when looking them up in the environment.
const EnvPrefix = "starflow_"

var truthy = []string{"true", "1", "on", "yes"}

// Settings holds the display policy settings.
type Settings struct {
	// DisplayOutput enables live echo of command output.
	DisplayOutput bool

	// DepthLimit is the deepest nesting level whose output is displayed.
	DepthLimit int
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		DisplayOutput: ParseBool(DefaultDisplayOutput),
		DepthLimit:    DefaultDepthLimit,
	}
}

// Source provides raw string values by key.
type Source interface {
	Lookup(key string) (string, bool)
}

// Map is a Source backed by a map of keys to raw values.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

type envSource struct {
	lookup func(string) (string, bool)
}

// Env returns a Source reading the process environment.
// The key shell.SPAWN_DEPTH_LIMIT is read from starflow_shell__SPAWN_DEPTH_LIMIT,
// falling back to the upper-case STARFLOW_SHELL__SPAWN_DEPTH_LIMIT.
func Env() Source {
	return envSource{lookup: os.LookupEnv}
}

// EnvName returns the environment variable name for key.
func EnvName(key string) string {
	return EnvPrefix + strings.ReplaceAll(key, ".", "__")
}

func (e envSource) Lookup(key string) (string, bool) {
	name := EnvName(key)
	if v, ok := e.lookup(name); ok {
		return v, true
	}
	return e.lookup(strings.ToUpper(name))
}

// Load resolves Settings from sources. For each key the first source that has
// it wins; keys no source has take their defaults.
//
// Returns CodeInvalidConfig if the depth limit is not an integer.
func Load(sources ...Source) (Settings, error) {
	display := lookup(sources, KeyDisplayOutput, DefaultDisplayOutput)
	settings := Settings{
		DisplayOutput: ParseBool(display),
		DepthLimit:    DefaultDepthLimit,
	}

	raw, ok := lookupRaw(sources, KeyDepthLimit)
	if ok {
		limit, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Settings{}, errors.WrapWithContext(
				err,
				errors.CodeInvalidConfig,
				"depth limit must be an integer",
				map[string]interface{}{"key": KeyDepthLimit, "value": raw},
			)
		}
		settings.DepthLimit = limit
	}

	return settings, nil
}

// ParseBool reports whether s is one of the truthy tokens true, 1, on or yes.
// Matching ignores case and surrounding whitespace; anything else is false.
func ParseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range truthy {
		if s == t {
			return true
		}
	}
	return false
}

func lookup(sources []Source, key, fallback string) string {
	if v, ok := lookupRaw(sources, key); ok {
		return v
	}
	return fallback
}

func lookupRaw(sources []Source, key string) (string, bool) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
