package experiment

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

type constructor func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper

// Registry maps algorithm names to stepper constructors. It implements
// driver.Factory.
type Registry struct {
	steppers map[string]constructor
	info     map[string]string
	order    []string

	// Seed and MaxAttempts configure bogo sort; they are read whenever a
	// bogo stepper is built.
	Seed        int64
	MaxAttempts int
}

func NewRegistry() *Registry {
	r := &Registry{
		steppers:    make(map[string]constructor),
		info:        make(map[string]string),
		Seed:        1,
		MaxAttempts: sorting.DefaultMaxAttempts,
	}

	r.register("selection", "scan for the minimum, swap it in",
		func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewSelection(a, hl) })
	r.register("insertion", "shift larger values right, drop the key",
		func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewInsertion(a, hl) })
	r.register("bubble", "swap adjacent pairs until a clean pass",
		func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewBubble(a, hl) })
	r.register("merge", "bottom-up merge through a buffer",
		func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewMerge(a, hl) })
	r.register("quick", "lomuto partition on the last element",
		func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewQuick(a, hl) })
	r.register("heap", "build a max-heap, extract the root",
		func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewHeap(a, hl) })
	r.register("bogo", "shuffle until sorted (capped)",
		func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper {
			return sorting.NewBogo(a, hl, rand.New(rand.NewSource(r.Seed)), r.MaxAttempts)
		})

	return r
}

func (r *Registry) register(name, info string, fn constructor) {
	r.steppers[name] = fn
	r.info[name] = info
	r.order = append(r.order, name)
}

var _ driver.Factory = (*Registry)(nil)

func (r *Registry) New(name string, a sorting.Array, hl *sorting.Highlight) (sorting.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sorting.ErrUnknownAlgorithm, name)
	}
	return fn(a, hl), nil
}

// ListAlgorithms returns the algorithm names in registration order.
func (r *Registry) ListAlgorithms() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *Registry) Has(name string) bool {
	_, ok := r.steppers[name]
	return ok
}

func (r *Registry) Describe(name string) string {
	return r.info[name]
}

func (r *Registry) DefaultMetrics() []driver.Metric {
	return []driver.Metric{
		metrics.NewComparisons(),
		metrics.NewMoves(),
		metrics.NewSwaps(),
		metrics.NewWrites(),
		metrics.NewSortedness(),
	}
}
