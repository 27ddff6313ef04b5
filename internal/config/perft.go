package config

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxDepth bounds the search so a typo cannot run for days.
const MaxDepth = 8

// PerftConfig holds settings for a move-path count.
type PerftConfig struct {
	// Depth is the number of plies counted from the start position.
	Depth int

	// Divide prints the count below each root move.
	Divide bool

	// Moves is a line played from the initial position before counting,
	// in coordinate form ("e2e4", "a7a8q").
	Moves []string
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Depth: 3}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth must be between 1 and %d, got %d", MaxDepth, p.Depth)
	}
	for _, m := range p.Moves {
		if len(m) != 4 && len(m) != 5 {
			return errors.Wrapf(errors.ErrInvalidConfig, "malformed move %q", m)
		}
	}
	return nil
}
