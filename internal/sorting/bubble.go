package sorting

// Bubble is bubble sort with a shrinking pass and early exit once a pass
// makes no swaps. Each adjacent comparison is a step; each swap is another.
type Bubble struct {
	cursor
	limit   int
	i       int
	swapped bool
	pending bool
}

func NewBubble(a Array, hl *Highlight) *Bubble {
	s := &Bubble{cursor: newCursor(a, hl), limit: len(a)}
	s.beginPass()
	return s
}

func (s *Bubble) Name() string { return "bubble" }

func (s *Bubble) Advance() Step {
	if s.done {
		return noop
	}

	if s.pending {
		s.a.swap(s.i-1, s.i)
		s.hl.Set(s.i-1, s.i)
		s.pending = false
		s.swapped = true
		s.i++
		s.seek()
		return s.result(OpSwap)
	}

	s.hl.Set(s.i-1, s.i)
	if s.a[s.i-1] > s.a[s.i] {
		s.pending = true
	} else {
		s.i++
		s.seek()
	}
	return s.result(OpCompare)
}

func (s *Bubble) beginPass() {
	s.swapped = false
	s.i = 1
	s.seek()
}

// seek moves to the next comparison, closing finished passes on the way.
func (s *Bubble) seek() {
	for s.i >= s.limit {
		s.limit--
		if !s.swapped {
			s.finish()
			return
		}
		s.swapped = false
		s.i = 1
	}
}
