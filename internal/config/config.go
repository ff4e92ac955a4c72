// Package config holds the run configuration for a batch. Values come
// from FOOTSCAN_* environment variables with sensible defaults;
// command-line flags override them.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/user/footscan_analyzer_go/internal/analysis"
)

type Config struct {
	Glob       string `envconfig:"GLOB" default:"data/*.asc"`
	TargetRows int    `envconfig:"TARGET_ROWS"`
	TargetCols int    `envconfig:"TARGET_COLS"`
	PNGOut     string `envconfig:"PNG_OUT" default:"mean_pressure.png"`
	PDFOut     string `envconfig:"PDF_OUT" default:""`
	SkipBad    bool   `envconfig:"SKIP_BAD" default:"false"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the FOOTSCAN_* environment and fills in defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FOOTSCAN", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment config: %w", err)
	}
	if cfg.TargetRows == 0 {
		cfg.TargetRows = analysis.DefaultTargetRows
	}
	if cfg.TargetCols == 0 {
		cfg.TargetCols = analysis.DefaultTargetCols
	}
	return &cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Glob == "" {
		return fmt.Errorf("input glob must not be empty")
	}
	if c.TargetRows < 2 || c.TargetCols < 2 {
		return fmt.Errorf("target resolution %dx%d is too small", c.TargetRows, c.TargetCols)
	}
	return nil
}
