// perft counts the move paths of a given depth from the initial chess
// position, optionally after playing a line of moves first.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := execute(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs one count, stopping early on interrupt.
func execute(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, cfg, newLogger(cfg))
}

// newLogger returns a logger writing to cfg.LogFile at the configured
// level. An unknown level falls back to info; run reports it.
func newLogger(cfg *config.Config) *log.Logger {
	lvl, _ := cfg.Level()
	return &log.Logger{
		Handler: cli.New(cfg.LogFile),
		Level:   lvl,
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the move paths of a given depth from the initial chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves (-moves):\n")
	fmt.Fprintf(os.Stderr, "  e2e4   from square then to square\n")
	fmt.Fprintf(os.Stderr, "  a7a8n  promotion, n/b/r/q (queen if omitted)\n")
	fmt.Fprintf(os.Stderr, "  Castling is the king's two-square move, e.g. e1g1.\n")
}
