package app

import (
	"fmt"

	"github.com/vk/classpack/internal/config"
)

// Config holds everything the CLI hands to a build run. Pointer fields
// are tri-state: nil means "not set on the command line", so the selected
// build profile decides.
type Config struct {
	AppPath       string // application descriptor (app.json)
	WorkspacePath string // workspace descriptor (workspace.json)
	OutDir        string // overrides the workspace build directory
	Profile       string // development, testing or production
	Framework     string // overrides the framework root path
	HTMLPath      string // HTML entry file to update, "" skips injection

	MinifyJS      *bool
	MinifyCSS     *bool
	FailOnMissing *bool

	MinimalCore    bool // force the minimal synthesized core
	DebugFramework bool // verbose bootstrap diagnostics, no minification

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. The zero profile defaults to development.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Profile == "" {
		cfg.Profile = config.ProfileDevelopment
	}
	switch cfg.Profile {
	case config.ProfileDevelopment, config.ProfileTesting, config.ProfileProduction:
	default:
		return nil, fmt.Errorf("unknown build profile %q", cfg.Profile)
	}
	if cfg.AppPath == "" {
		cfg.AppPath = "app.json"
	}
	return &cfg, nil
}
