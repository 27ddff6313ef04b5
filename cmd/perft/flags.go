// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Counting flags
var (
	depth   = flag.Int("depth", 3, "Number of plies to count")
	divide  = flag.Bool("divide", false, "Print the node count below each root move")
	moves   = flag.String("moves", "", "Moves to play from the initial position first, e.g. 'e2e4 e7e5' (a trailing n/b/r/q picks the promotion)")
	workers = flag.Int("workers", 0, "Number of goroutines counting root moves (0 = one per CPU core)")
)

// Output flags
var (
	format    = flag.String("format", "text", "Output format: text, json")
	showBoard = flag.Bool("board", false, "Print the start position before the counts")
	quiet     = flag.Bool("s", false, "Silent mode: totals only")
	verbose   = flag.Bool("v", false, "Verbose mode: log every root move")
	logLevel  = flag.String("log-level", "info", "Log level: debug, info, warn, error, fatal")
)

// Help and version flags
var (
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) error {
	applyCountFlags(cfg)
	applyVerbosityFlags(cfg)
	return applyOutputFlags(cfg)
}

func applyCountFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Moves = splitMoves(*moves)

	if *workers > 0 {
		cfg.Workers = *workers
	} else {
		cfg.Workers = runtime.NumCPU()
	}
}

func applyOutputFlags(cfg *config.Config) error {
	f, err := config.ParseOutputFormat(*format)
	if err != nil {
		return err
	}
	cfg.Output.Format = f
	cfg.Output.ShowBoard = *showBoard
	return nil
}

func applyVerbosityFlags(cfg *config.Config) {
	cfg.LogLevel = *logLevel
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
		cfg.LogLevel = "debug"
	}
}

// splitMoves splits a move list on spaces and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}
