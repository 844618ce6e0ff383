package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Comparisons counts comparison steps.
type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (c *Comparisons) Name() string { return c.name }

func (c *Comparisons) Observe(step sorting.Step, a sorting.Array, hl sorting.Highlight) {
	if step.Op == sorting.OpCompare {
		c.count++
	}
}

func (c *Comparisons) Value() float64 { return float64(c.count) }

func (c *Comparisons) Reset() { c.count = 0 }
