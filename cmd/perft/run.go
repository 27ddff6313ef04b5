package main

import (
	"context"
	"time"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// run plays the configured line from the initial position, counts the
// move paths below it and writes the report to cfg.OutputFile.
func run(ctx context.Context, cfg *config.Config, logger log.Interface) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	b := engine.NewInitialBoard(engine.WithLogger(logger))
	if err := playLine(b, cfg.Perft.Moves); err != nil {
		return err
	}

	report := output.Report{
		Moves:  cfg.Perft.Moves,
		Depth:  cfg.Perft.Depth,
		Status: b.Status().String(),
	}
	if cfg.Output.ShowBoard {
		report.Board = b.String()
	}

	start := time.Now()
	counts, err := countDivide(ctx, cfg, b, logger)
	if err != nil {
		return err
	}
	report.Elapsed = time.Since(start)

	for _, c := range counts {
		report.Nodes += c.Nodes
	}
	if cfg.Perft.Divide {
		report.Divide = counts
	}

	logger.WithFields(log.Fields{
		"depth":   report.Depth,
		"nodes":   report.Nodes,
		"workers": cfg.Workers,
		"elapsed": report.Elapsed,
	}).Info("perft complete")

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}

// countDivide counts on the calling goroutine when one worker is configured
// and through the worker pool otherwise.
func countDivide(ctx context.Context, cfg *config.Config, b *engine.Board, logger log.Interface) ([]engine.MoveCount, error) {
	if cfg.Workers == 1 {
		return engine.Divide(ctx, b, cfg.Perft.Depth)
	}
	return worker.Divide(ctx, b, cfg.Perft.Depth,
		worker.WithWorkers(cfg.Workers),
		worker.WithLogger(logger),
	)
}
