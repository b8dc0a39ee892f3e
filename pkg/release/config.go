package release

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/ruru-project/ruru/pkg/config"
)

// Config holds the release cutter's settings, loaded from the layered YAML
// configuration and overridden by command-line flags.
type Config struct {
	Marker       string
	Changelog    string
	Remote       string
	BranchPrefix string
	GitHubRepo   string
	GitHubToken  string
	Theme        string
	Push         bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Marker:       DefaultMarkerPath,
		Changelog:    "CHANGELOG.md",
		Remote:       "origin",
		BranchPrefix: "release/",
		Theme:        "default",
		Push:         true,
	}
}

// Load reads the tool configuration from the layered YAML file in dir. A
// missing file yields the defaults; a present but malformed file is an
// error.
func Load(dir, file, environment string) (*Config, error) {
	cfg := Default()

	values, err := config.GetAll(config.Options{
		Dir:         dir,
		File:        file,
		Environment: environment,
	})
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return cfg, nil
		}
		return nil, err
	}

	if v, ok := values["marker"].(string); ok && v != "" {
		cfg.Marker = v
	}
	if v, ok := values["changelog"].(string); ok && v != "" {
		cfg.Changelog = v
	}
	if v, ok := values["remote"].(string); ok && v != "" {
		cfg.Remote = v
	}
	if v, ok := values["branch_prefix"].(string); ok && v != "" {
		cfg.BranchPrefix = v
	}
	if v, ok := values["github_repo"].(string); ok && v != "" {
		cfg.GitHubRepo = v
	}
	if v, ok := values["github_token"].(string); ok && v != "" {
		cfg.GitHubToken = v
	}
	if v, ok := values["theme"].(string); ok && v != "" {
		cfg.Theme = v
	}
	if v, ok := values["push"].(bool); ok {
		cfg.Push = v
	}

	return cfg, nil
}

// MergeFlags overrides config values with any flags the user set.
func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("marker"); err == nil && v != "" {
		cfg.Marker = v
	}
	if v, err := flags.GetString("github-repo"); err == nil && v != "" {
		cfg.GitHubRepo = v
	}
	if v, err := flags.GetString("github-token"); err == nil && v != "" {
		cfg.GitHubToken = v
	}
	if v, err := flags.GetString("theme"); err == nil && v != "" {
		cfg.Theme = v
	}
	if v, err := flags.GetBool("no-push"); err == nil && v {
		cfg.Push = false
	}
	return cfg
}
