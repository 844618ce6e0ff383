package experiment

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
)

// Batch runs independent headless experiments concurrently. Every run gets
// its own registry and metrics, so runs share no mutable state.
type Batch struct {
	configs []Config
	workers int
	logger  *log.Logger
}

// NewBatch runs at most workers experiments at a time; workers <= 0 uses
// GOMAXPROCS.
func NewBatch(workers int, configs ...Config) *Batch {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Batch{configs: configs, workers: workers, logger: log.Default()}
}

func (b *Batch) SetLogger(l *log.Logger) { b.logger = l }

// Run returns results in config order. The first error cancels the runs
// still pending and is returned once every worker has stopped.
func (b *Batch) Run(ctx context.Context) ([]*Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*Result, len(b.configs))
	errs := make([]error, len(b.configs))
	sem := make(chan struct{}, b.workers)

	var wg sync.WaitGroup
	for i := range b.configs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			}
			defer func() { <-sem }()

			registry := NewRegistry()
			exp := New(b.configs[idx], registry)
			exp.SetLogger(b.logger)
			if err := exp.Setup(registry.DefaultMetrics()); err != nil {
				errs[idx] = err
				cancel()
				return
			}
			results[idx], errs[idx] = exp.Run(ctx)
			if errs[idx] != nil {
				cancel()
			}
		}(i)
	}

	wg.Wait()

	// Prefer the error that caused the cancellation over the ones it caused.
	var first error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, context.Canceled) {
			return nil, err
		}
		if first == nil {
			first = err
		}
	}
	if first != nil {
		return nil, first
	}
	return results, nil
}
