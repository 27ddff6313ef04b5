package worker

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PerftFunc counts the move paths below each item's board. Counting stops
// as soon as ctx is done and the result carries ctx's error.
func PerftFunc(ctx context.Context) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, Label: item.Label}
		if item.Board == nil {
			res.Error = fmt.Errorf("root move %s has no board", item.Label)
			return res
		}
		res.Nodes, res.Error = engine.PerftContext(ctx, item.Board, item.Depth)
		return res
	}
}

// Divide counts Perft(b, depth) split by root move, one work item per root
// move, and returns the counts in label order. Cancelling ctx stops the
// workers mid-count; the counts gathered so far are discarded and ctx.Err
// is returned.
func Divide(ctx context.Context, b *engine.Board, depth int, opts ...PoolOption) ([]engine.MoveCount, error) {
	if depth <= 0 {
		return nil, nil
	}
	roots := engine.RootMoves(b)
	counts := make([]engine.MoveCount, len(roots))
	if len(roots) == 0 {
		return counts, nil
	}

	pool := NewPoolWithOptions(PerftFunc(ctx), opts...)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range roots {
			select {
			case <-ctx.Done():
				pool.Stop()
				return
			default:
			}
			pool.Submit(WorkItem{Index: i, Label: m.Label(), Board: m.Board, Depth: depth - 1})
		}
	}()

	var firstErr error
	done := 0
	for res := range pool.Results() {
		if res.Error != nil {
			if firstErr == nil {
				firstErr = res.Error
			}
			pool.Stop()
			continue
		}
		counts[res.Index] = engine.MoveCount{Label: res.Label, Nodes: res.Nodes}
		done++
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if done != len(roots) {
		return nil, fmt.Errorf("counted %d of %d root moves", done, len(roots))
	}
	return counts, nil
}
