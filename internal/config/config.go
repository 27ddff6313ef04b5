// Package config provides configuration for the perft tool.
package config

import (
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Perft  *PerftConfig
	Output *OutputConfig

	// Workers is the number of goroutines counting root moves.
	Workers int

	// LogLevel is an apex/log level name: debug, info, warn, error or fatal.
	LogLevel string

	Verbosity int // 0=totals only, 1=timing, 2=per-move progress

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Perft:      NewPerftConfig(),
		Output:     NewOutputConfig(),
		Workers:    1,
		LogLevel:   "info",
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	return lvl, nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.OutputFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no output writer")
	}
	return nil
}
