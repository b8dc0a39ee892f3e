// Package config loads environment-layered YAML configuration, after the R
// `config` package: a required default section merged with the settings of
// the active environment, with $VAR values resolved from the process
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSection is the required top-level key holding baseline settings.
const DefaultSection = "default"

// EnvironmentVariable selects the active environment when none is given.
const EnvironmentVariable = "CONFIG_ACTIVE"

var (
	// ErrMissingDefault reports a configuration file without a default section.
	ErrMissingDefault = errors.New("configuration file does not contain a default section")

	// ErrNotFound reports that no configuration file could be located.
	ErrNotFound = errors.New("configuration file not found")
)

// Options controls where and how configuration is read. The zero value reads
// config.yml from the working directory, searching parents, for the
// environment named by CONFIG_ACTIVE.
type Options struct {
	// File is the configuration file name (default "config.yml").
	File string

	// Environment picks the section merged over default. Empty means the
	// CONFIG_ACTIVE environment variable, falling back to "default".
	Environment string

	// Dir is the directory the file search starts in (default the working
	// directory).
	Dir string

	// NoParent disables searching parent directories.
	NoParent bool
}

func (o Options) file() string {
	if o.File == "" {
		return "config.yml"
	}
	return o.File
}

func (o Options) environment() string {
	if o.Environment != "" {
		return o.Environment
	}
	if env := os.Getenv(EnvironmentVariable); env != "" {
		return env
	}
	return DefaultSection
}

// GetAll loads the configuration file and returns the active environment's
// settings merged over the default section.
func GetAll(opts Options) (map[string]any, error) {
	path, err := FindFile(opts.Dir, opts.file(), !opts.NoParent)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingDefault, path)
	}

	rawDefault, ok := doc[DefaultSection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingDefault, path)
	}

	env := opts.environment()
	defaults, _ := rawDefault.(map[string]any)
	overrides := map[string]any{}
	if raw, ok := doc[env]; ok {
		overrides, ok = raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("configuration for %q in %s must be a mapping", env, path)
		}
	}

	if len(defaults) == 0 && len(overrides) == 0 {
		return nil, fmt.Errorf("configuration for %q or %q in %s must be a non-empty mapping",
			DefaultSection, env, path)
	}

	merged := make(map[string]any, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}

	return replaceEnvVars(merged).(map[string]any), nil
}

// Get loads the configuration and returns the named top-level value, or nil
// when the key is absent.
func Get(value string, opts Options) (any, error) {
	merged, err := GetAll(opts)
	if err != nil {
		return nil, err
	}
	return merged[value], nil
}

// FindFile locates the configuration file starting in dir (the working
// directory when empty) and, when useParent is set, walking up to the
// filesystem root.
func FindFile(dir, file string, useParent bool) (string, error) {
	if filepath.IsAbs(file) {
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			return file, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, file)
	}

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		dir = cwd
	}

	for {
		candidate := filepath.Join(dir, file)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		if !useParent {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, file)
}

// replaceEnvVars substitutes string values beginning with $ with the value
// of the named environment variable, recursing through maps and lists.
// Unset variables leave the literal value untouched.
func replaceEnvVars(data any) any {
	switch v := data.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = replaceEnvVars(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = replaceEnvVars(item)
		}
		return out
	case string:
		if strings.HasPrefix(v, "$") {
			if resolved, ok := os.LookupEnv(v[1:]); ok {
				return resolved
			}
		}
		return v
	default:
		return data
	}
}
