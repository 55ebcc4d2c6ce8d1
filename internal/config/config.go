// Package config resolves tracker settings from three layers: built-in
// defaults, an optional TOML file at ~/.worktime/config.toml, and WORKTIME_*
// environment variables, with later layers winning.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds all tracker settings. Thresholds are kept in seconds to match
// the file format; use the duration accessors in code.
type Config struct {
	DBPath             string `env:"WORKTIME_DB"`
	IdleThresholdSec   int    `env:"WORKTIME_IDLE_THRESHOLD_SEC"`
	UnsavedWarningSec  int    `env:"WORKTIME_UNSAVED_WARNING_SEC"`
	ReportTemplatePath string `env:"WORKTIME_REPORT_TEMPLATE"`
}

type tomlConfig struct {
	DBPath             string `toml:"db_path"`
	IdleThresholdSec   int    `toml:"idle_threshold_seconds"`
	UnsavedWarningSec  int    `toml:"unsaved_warning_seconds"`
	ReportTemplatePath string `toml:"report_template"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		IdleThresholdSec:  300,
		UnsavedWarningSec: 600,
	}
}

// Load resolves configuration from defaults, the config file, and the
// environment. A missing config file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(home, ".worktime", "worktime.db")
		}
		tomlPath := filepath.Join(home, ".worktime", "config.toml")
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := applyFile(&cfg, tomlPath); err != nil {
				return cfg, err
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment config: %w", err)
	}

	if cfg.IdleThresholdSec <= 0 {
		cfg.IdleThresholdSec = Default().IdleThresholdSec
	}
	if cfg.UnsavedWarningSec <= 0 {
		cfg.UnsavedWarningSec = Default().UnsavedWarningSec
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	var tc tomlConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if tc.DBPath != "" {
		cfg.DBPath = tc.DBPath
	}
	if tc.IdleThresholdSec > 0 {
		cfg.IdleThresholdSec = tc.IdleThresholdSec
	}
	if tc.UnsavedWarningSec > 0 {
		cfg.UnsavedWarningSec = tc.UnsavedWarningSec
	}
	if tc.ReportTemplatePath != "" {
		cfg.ReportTemplatePath = tc.ReportTemplatePath
	}
	return nil
}

// IdleThreshold is how long activity may pause before the gap counts as a break.
func (c Config) IdleThreshold() time.Duration {
	return time.Duration(c.IdleThresholdSec) * time.Second
}

// UnsavedWarning is how long after the last checkpoint status output warns.
func (c Config) UnsavedWarning() time.Duration {
	return time.Duration(c.UnsavedWarningSec) * time.Second
}
