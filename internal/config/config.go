// Package config contains all knobs and defaults used to configure the cactus
// command line tools.
package config

import (
	"errors"
	"fmt"
)

const (
	DefaultWorkers    = 8
	DefaultIterations = 1000
	DefaultBaseDepth  = 16
	DefaultMaxDepth   = 32
	DefaultLogFormat  = "text"
	DefaultLogLevel   = "info"
)

// LogConfig defines cactus logging settings.
type LogConfig struct {
	// Format is the log format to use in the log output (e.g. 'text' or 'json')
	Format string

	// Level is the log level to use in the log output (e.g. 'none', 'debug', or 'info')
	Level string
}

// StressConfig defines the workload run by 'cactus stress'.
type StressConfig struct {
	// Workers is the number of goroutines sharing the base stack.
	Workers int

	// Iterations is the number of rounds each worker performs.
	Iterations int

	// BaseDepth is the depth of the stack shared by every worker.
	BaseDepth int

	// MaxDepth bounds how many values a worker pushes on top of the base in a round.
	MaxDepth int

	// Seed seeds the per-worker random sources. Zero picks a time based seed.
	Seed int64
}

type Config struct {
	Log    LogConfig
	Stress StressConfig
}

func (cfg *Config) Verify() error {
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("config 'log.format' must be one of ['text', 'json']")
	}

	if cfg.Log.Level != "none" &&
		cfg.Log.Level != "debug" &&
		cfg.Log.Level != "info" &&
		cfg.Log.Level != "warn" &&
		cfg.Log.Level != "error" {
		return fmt.Errorf(
			"config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error']",
		)
	}

	if cfg.Stress.Workers <= 0 {
		return errors.New("config 'stress.workers' must be greater than zero")
	}

	if cfg.Stress.Iterations <= 0 {
		return errors.New("config 'stress.iterations' must be greater than zero")
	}

	if cfg.Stress.BaseDepth < 0 {
		return errors.New("config 'stress.baseDepth' cannot be negative")
	}

	if cfg.Stress.MaxDepth <= 0 {
		return errors.New("config 'stress.maxDepth' must be greater than zero")
	}

	return nil
}

// DefaultConfig is the cactus tooling default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
		},
		Stress: StressConfig{
			Workers:    DefaultWorkers,
			Iterations: DefaultIterations,
			BaseDepth:  DefaultBaseDepth,
			MaxDepth:   DefaultMaxDepth,
		},
	}
}
