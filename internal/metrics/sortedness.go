package metrics

import (
	"github.com/san-kum/sortviz/internal/analysis"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Sortedness reports how ordered the most recently observed array is, as
// the fraction of adjacent pairs in order.
type Sortedness struct {
	name string
	last sorting.Array
}

func NewSortedness() *Sortedness {
	return &Sortedness{name: "sortedness"}
}

func (s *Sortedness) Name() string { return s.name }

func (s *Sortedness) Observe(step sorting.Step, a sorting.Array, hl sorting.Highlight) {
	s.last = a
}

// Init records the array a run starts from, so runs that take no steps
// still report it.
func (s *Sortedness) Init(a sorting.Array) { s.last = a }

func (s *Sortedness) Value() float64 {
	if s.last == nil {
		return 0
	}
	return analysis.Sortedness(s.last)
}

func (s *Sortedness) Reset() { s.last = nil }
