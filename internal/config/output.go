package config

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how results are printed.
type OutputFormat int

const (
	Text OutputFormat = iota // "e2e4: 20" lines and a total
	JSON                     // a single JSON document
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	}
	return "unknown"
}

// ParseOutputFormat parses a format name as given on the command line.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", s)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is the output encoding.
	Format OutputFormat

	// ShowBoard prints the start position before the counts.
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{Format: Text}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %d", int(o.Format))
	}
	return nil
}
