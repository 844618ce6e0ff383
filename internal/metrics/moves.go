package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Moves counts steps that mutated the array. With an op filter it only
// counts that kind of movement.
type Moves struct {
	name  string
	only  sorting.Op
	count int
}

func NewMoves() *Moves {
	return &Moves{name: "moves", only: sorting.OpNone}
}

func NewSwaps() *Moves {
	return &Moves{name: "swaps", only: sorting.OpSwap}
}

func NewWrites() *Moves {
	return &Moves{name: "writes", only: sorting.OpWrite}
}

func (m *Moves) Name() string { return m.name }

func (m *Moves) Observe(step sorting.Step, a sorting.Array, hl sorting.Highlight) {
	if !step.Op.IsMove() {
		return
	}
	if m.only == sorting.OpNone || step.Op == m.only {
		m.count++
	}
}

func (m *Moves) Value() float64 { return float64(m.count) }

func (m *Moves) Reset() { m.count = 0 }
