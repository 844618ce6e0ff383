package experiment

import (
	"github.com/san-kum/sortviz/internal/analysis"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Progress samples the sortedness of the array as a run paints. It keeps at
// most 2*capacity samples, halving its resolution whenever it fills up. The
// starting state is always the first sample and the rest stay evenly spaced.
type Progress struct {
	capacity int
	stride   int
	seen     int
	skipped  bool
	samples  []float64
}

func NewProgress(capacity int) *Progress {
	if capacity < 2 {
		capacity = 2
	}
	return &Progress{capacity: capacity, stride: 1, samples: make([]float64, 0, 2*capacity)}
}

func (p *Progress) Paint(a sorting.Array, hl sorting.Highlight) {
	p.seen++
	if p.seen%p.stride != 0 {
		p.skipped = true
		return
	}
	p.skipped = false
	p.samples = append(p.samples, analysis.Sortedness(a))
	if len(p.samples) >= 2*p.capacity {
		half := p.samples[:0]
		for i := 0; i < len(p.samples); i += 2 {
			half = append(half, p.samples[i])
		}
		p.samples = half
		p.stride *= 2
		// the newest sample sat on an odd index and was dropped
		p.skipped = true
	}
}

// Start records the state before the first step.
func (p *Progress) Start(a sorting.Array) {
	p.seen = 0
	p.stride = 1
	p.skipped = false
	p.samples = append(p.samples[:0], analysis.Sortedness(a))
}

// Close records the final state if the last paint fell between samples.
func (p *Progress) Close(a sorting.Array) {
	if p.skipped {
		p.samples = append(p.samples, analysis.Sortedness(a))
		p.skipped = false
	}
}

func (p *Progress) Samples() []float64 {
	out := make([]float64, len(p.samples))
	copy(out, p.samples)
	return out
}
