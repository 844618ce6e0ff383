package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Option configures a Driver.
type Option func(*Driver)

func WithRenderer(r Renderer) Option { return func(d *Driver) { d.renderer = r } }

func WithListener(l Listener) Option {
	return func(d *Driver) { d.listeners = append(d.listeners, l) }
}

func WithMetrics(ms ...Metric) Option {
	return func(d *Driver) { d.metrics = append(d.metrics, ms...) }
}

func WithLogger(l *log.Logger) Option { return func(d *Driver) { d.logger = l } }

func WithLimits(l Limits) Option { return func(d *Driver) { d.limits = l } }

func WithCadence(c Cadence) Option { return func(d *Driver) { d.cadence = c } }

type Driver struct {
	factory   Factory
	renderer  Renderer
	listeners []Listener
	metrics   []Metric
	logger    *log.Logger
	limits    Limits
	cadence   Cadence

	state      State
	algorithm  string
	stepper    sorting.Stepper
	array      sorting.Array
	hl         *sorting.Highlight
	steps      int
	generation uint64
}

func New(f Factory, opts ...Option) *Driver {
	d := &Driver{
		factory: f,
		limits:  DefaultLimits,
		cadence: CadenceFromDelay(DefaultDelay),
		hl:      &sorting.Highlight{I: sorting.Unset, J: sorting.Unset},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	return d
}

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddListener(l Listener) { d.listeners = append(d.listeners, l) }

func (d *Driver) State() State       { return d.state }
func (d *Driver) Algorithm() string  { return d.algorithm }
func (d *Driver) Steps() int         { return d.steps }
func (d *Driver) Cadence() Cadence   { return d.cadence }
func (d *Driver) Generation() uint64 { return d.generation }

// Snapshot returns the current array and highlight. The array is shared
// with the run and must not be modified.
func (d *Driver) Snapshot() (sorting.Array, sorting.Highlight) {
	return d.array, *d.hl
}

// Stepper returns the live stepper, or nil outside a run.
func (d *Driver) Stepper() sorting.Stepper { return d.stepper }

// Start begins a run of algorithm over a copy of initial. An active run is
// stopped first. On error the driver is left untouched.
func (d *Driver) Start(algorithm string, initial sorting.Array) error {
	if err := d.validate(initial); err != nil {
		return err
	}

	a := initial.Clone()
	hl := &sorting.Highlight{}
	s, err := d.factory.New(algorithm, a, hl)
	if err != nil {
		return fmt.Errorf("start %s: %w", algorithm, err)
	}

	d.Stop()

	d.generation++
	d.state = Running
	d.algorithm = algorithm
	d.stepper = s
	d.array = a
	d.hl = hl
	d.steps = 0
	for _, m := range d.metrics {
		m.Reset()
		if in, ok := m.(Initializer); ok {
			in.Init(a)
		}
	}

	d.logger.Debug("run started", "algorithm", algorithm, "size", len(a), "cadence", d.cadence)
	for _, l := range d.listeners {
		l.Started(algorithm)
	}
	return nil
}

func (d *Driver) validate(a sorting.Array) error {
	if len(a) < d.limits.MinLength || len(a) > d.limits.MaxLength {
		return fmt.Errorf("%w: %d not in [%d,%d]", sorting.ErrInvalidLength, len(a), d.limits.MinLength, d.limits.MaxLength)
	}
	for i, v := range a {
		if v <= 0 {
			return fmt.Errorf("%w: a[%d] = %d", sorting.ErrInvalidValue, i, v)
		}
	}
	return nil
}

// Tick advances the run by one unit of work and paints it. It reports
// whether the run is still active afterwards.
func (d *Driver) Tick() bool {
	if d.state != Running || d.stepper == nil {
		return false
	}

	step := sorting.Step{Op: sorting.OpNone, Done: d.stepper.Done()}
	if !step.Done {
		step = d.stepper.Advance()
		d.steps++
	}

	d.check(step)

	if step.Op != sorting.OpNone {
		for _, m := range d.metrics {
			m.Observe(step, d.array, *d.hl)
		}
	}
	if d.renderer != nil {
		d.renderer.Paint(d.array, *d.hl)
	}

	if step.Done && d.state == Running {
		d.finish()
	}
	return d.state == Running
}

// check panics when the stepper broke the highlight contract.
func (d *Driver) check(step sorting.Step) {
	msg := ""
	if err := d.hl.Validate(len(d.array)); err != nil {
		msg = err.Error()
	} else if step.Done && d.hl.IsSet() {
		msg = "highlight still set after completion"
	}
	if msg != "" {
		panic(&sorting.InvariantError{Algorithm: d.algorithm, Step: d.steps, Message: msg})
	}
}

func (d *Driver) finish() {
	d.stepper = nil
	d.state = Finished
	d.generation++
	d.logger.Debug("run finished", "algorithm", d.algorithm, "steps", d.steps)
	for _, l := range d.listeners {
		l.Finished()
	}
}

// Stop discards the active run regardless of progress. It is a no-op when
// no run is active.
func (d *Driver) Stop() {
	if d.state != Running {
		return
	}
	d.stepper = nil
	d.state = Stopped
	d.generation++
	d.logger.Debug("run stopped", "algorithm", d.algorithm, "steps", d.steps)
	for _, l := range d.listeners {
		l.Stopped()
	}
}

// SetCadence changes how the next ticks are scheduled.
func (d *Driver) SetCadence(c Cadence) {
	d.cadence = c
}

// Run ticks the active run until it finishes, is stopped, or ctx is
// cancelled. Cancellation stops the run and returns ctx.Err(). The cadence is
// re-read before every tick.
func (d *Driver) Run(ctx context.Context) error {
	fastTicks := 0
	for d.state == Running {
		c := d.cadence
		if c.Fast {
			select {
			case <-ctx.Done():
				d.Stop()
				return ctx.Err()
			default:
			}
			fastTicks++
			if fastTicks%FastYieldEvery == 0 {
				runtime.Gosched()
			}
		} else {
			timer := time.NewTimer(c.Interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				d.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		d.Tick()
	}
	return nil
}
