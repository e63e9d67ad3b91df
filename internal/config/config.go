// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/twopass/internal/options"
)

// CreateLogger creates a logger for the logging flags of the program options.
// Debug logging takes precedence over quiet mode.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
