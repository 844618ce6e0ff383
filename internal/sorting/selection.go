package sorting

// Selection is selection sort. Every inner comparison is a step and so is
// the swap that moves the minimum into place, when one is needed.
type Selection struct {
	cursor
	i, j, min int
	swapPending bool
}

func NewSelection(a Array, hl *Highlight) *Selection {
	s := &Selection{cursor: newCursor(a, hl)}
	s.beginPass()
	return s
}

func (s *Selection) Name() string { return "selection" }

func (s *Selection) Advance() Step {
	if s.done {
		return noop
	}

	if s.swapPending {
		s.a.swap(s.i, s.min)
		s.hl.Set(s.i, s.min)
		s.swapPending = false
		s.i++
		s.beginPass()
		return s.result(OpSwap)
	}

	s.hl.Set(s.i, s.j)
	if s.a[s.j] < s.a[s.min] {
		s.min = s.j
	}
	s.j++
	if s.j >= len(s.a) {
		if s.min != s.i {
			s.swapPending = true
		} else {
			s.i++
			s.beginPass()
		}
	}
	return s.result(OpCompare)
}

func (s *Selection) beginPass() {
	if s.i >= len(s.a)-1 {
		s.finish()
		return
	}
	s.min = s.i
	s.j = s.i + 1
}
