// Package configloader resolves the htmlfix configuration from config
// files, environment variables, and CLI flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/htmlfix/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project
	// config. Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is a config file path from the --config flag.
	// If set, project config discovery is skipped.
	ExplicitPath string

	// Apply is called with the merged file/env configuration so the
	// caller can layer CLI flag values on top. CLI flags take the
	// highest precedence.
	Apply func(*config.Config)
}

// LoadResult is the resolved configuration plus metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues found while loading.
	Warnings []string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. CLI flags (opts.Apply)
//  2. Environment variables (HTMLFIX_*)
//  3. Explicit config file (--config or HTMLFIX_CONFIG)
//  4. Project config (.htmlfix.yml upward search)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	explicit := opts.ExplicitPath
	if explicit == "" {
		explicit = EnvConfigPath()
	}

	path := explicit
	if path == "" {
		discovered, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			if explicit != "" {
				// An explicitly named config must load.
				return nil, err
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("ignoring unreadable config %s: %v", path, err))
		} else {
			cfg = fileCfg
			result.LoadedFrom = append(result.LoadedFrom, path)
		}
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	if opts.Apply != nil {
		opts.Apply(cfg)
	}

	result.Config = cfg
	return result, nil
}

func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
