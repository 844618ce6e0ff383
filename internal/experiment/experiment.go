package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
)

// MaxHeadlessLength bounds arrays run without a display.
const MaxHeadlessLength = 1 << 14

type Config struct {
	Algorithm   string
	Input       sorting.Array
	Seed        int64
	MaxAttempts int
	// Samples is the progress resolution; zero disables progress sampling.
	Samples int
}

type Result struct {
	Algorithm string
	Input     sorting.Array
	Output    sorting.Array
	Steps     int
	Metrics   map[string]float64
	Progress  []float64
	Elapsed   time.Duration
	Capped    bool
}

// Experiment runs one algorithm over one input to completion as fast as
// possible, without a display.
type Experiment struct {
	cfg      Config
	registry *Registry
	metrics  []driver.Metric
	logger   *log.Logger
}

func New(cfg Config, registry *Registry) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Experiment{cfg: cfg, registry: registry, logger: log.Default()}
}

func (e *Experiment) SetLogger(l *log.Logger) { e.logger = l }

func (e *Experiment) Setup(metrics []driver.Metric) error {
	if !e.registry.Has(e.cfg.Algorithm) {
		return fmt.Errorf("%w: %s", sorting.ErrUnknownAlgorithm, e.cfg.Algorithm)
	}
	e.metrics = metrics
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.cfg.MaxAttempts > 0 {
		e.registry.MaxAttempts = e.cfg.MaxAttempts
	}
	e.registry.Seed = e.cfg.Seed

	var progress *Progress
	opts := []driver.Option{
		driver.WithCadence(driver.FastCadence),
		driver.WithLimits(driver.Limits{MinLength: 0, MaxLength: MaxHeadlessLength}),
		driver.WithMetrics(e.metrics...),
		driver.WithLogger(e.logger),
	}
	if e.cfg.Samples > 0 {
		progress = NewProgress(e.cfg.Samples)
		opts = append(opts, driver.WithRenderer(progress))
	}

	d := driver.New(e.registry, opts...)
	if err := d.Start(e.cfg.Algorithm, e.cfg.Input); err != nil {
		return nil, err
	}
	stepper := d.Stepper()
	out, _ := d.Snapshot()
	if progress != nil {
		progress.Start(out)
	}

	start := time.Now()
	err := d.Run(ctx)
	elapsed := time.Since(start)

	result := &Result{
		Algorithm: e.cfg.Algorithm,
		Input:     e.cfg.Input.Clone(),
		Output:    out,
		Steps:     d.Steps(),
		Metrics:   make(map[string]float64),
		Elapsed:   elapsed,
	}
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	if progress != nil {
		progress.Close(out)
		result.Progress = progress.Samples()
	}
	if b, ok := stepper.(*sorting.Bogo); ok {
		result.Capped = b.Capped()
	}
	if err != nil {
		return result, err
	}

	e.logger.Debug("experiment finished", "algorithm", e.cfg.Algorithm, "size", len(out), "steps", result.Steps, "elapsed", elapsed)
	return result, nil
}
