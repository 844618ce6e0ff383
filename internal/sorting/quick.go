package sorting

type span struct{ lo, hi int }

const (
	quickCompare = iota
	quickSwap
	quickPivot
)

// Quick is iterative quicksort over an explicit stack of ranges. The pivot
// is the last element of the range and partitioning is Lomuto style. Each
// comparison, each in-partition swap and the final pivot swap are steps.
// Ranges of size one or less are popped without producing a step.
type Quick struct {
	cursor
	stack  []span
	lo, hi int
	pivot  int
	i, j   int
	pc     int
}

func NewQuick(a Array, hl *Highlight) *Quick {
	s := &Quick{cursor: newCursor(a, hl)}
	s.stack = append(s.stack, span{0, len(a) - 1})
	s.nextRange()
	return s
}

func (s *Quick) Name() string { return "quick" }

func (s *Quick) Advance() Step {
	if s.done {
		return noop
	}

	switch s.pc {
	case quickCompare:
		s.hl.Set(s.i, s.j)
		if s.a[s.j] < s.pivot {
			s.pc = quickSwap
		} else {
			s.j++
			s.seek()
		}
		return s.result(OpCompare)

	case quickSwap:
		s.a.swap(s.i, s.j)
		s.hl.Set(s.i, s.j)
		s.i++
		s.j++
		s.seek()
		return s.result(OpSwap)

	default:
		s.a.swap(s.i, s.hi)
		s.hl.Set(s.i, s.hi)
		s.stack = append(s.stack, span{s.i + 1, s.hi}, span{s.lo, s.i - 1})
		s.nextRange()
		return s.result(OpSwap)
	}
}

func (s *Quick) seek() {
	if s.j < s.hi {
		s.pc = quickCompare
	} else {
		s.pc = quickPivot
	}
}

// nextRange pops ranges until one needs partitioning.
func (s *Quick) nextRange() {
	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if top.lo >= top.hi {
			continue
		}
		s.lo, s.hi = top.lo, top.hi
		s.pivot = s.a[s.hi]
		s.i, s.j = s.lo, s.lo
		s.seek()
		return
	}
	s.finish()
}
