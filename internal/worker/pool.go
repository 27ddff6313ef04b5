// Package worker counts root-move subtrees in parallel. Each work item
// carries its own branch board, so workers never share mutable state.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// WorkItem is one root move to count below.
type WorkItem struct {
	Index int           // Position of the move in label order
	Label string        // Root move as "e2e4"
	Board *engine.Board // Position after the root move; owned by the worker
	Depth int           // Plies still to count below Board
}

// ProcessResult is the count for one work item.
type ProcessResult struct {
	Index int
	Label string
	Nodes uint64
	Error error
}

// ProcessFunc counts one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	logger      log.Interface
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithLogger sets the logger each counted item is reported to.
func WithLogger(l log.Interface) PoolOption {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPoolWithOptions creates a pool running fn. Without options it has
// one worker and room for ten queued items.
func NewPoolWithOptions(fn ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: fn,
		logger:      log.Log,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		res := p.processFunc(item)
		p.logger.WithFields(log.Fields{
			"worker": id,
			"move":   res.Label,
			"nodes":  res.Nodes,
		}).Debug("root move counted")
		p.resultChan <- res
	}
}

// Submit queues an item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers drop queued items instead of counting them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel counts arrive on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}
