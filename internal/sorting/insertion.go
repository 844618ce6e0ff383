package sorting

// Insertion is insertion sort. Each shift of a larger element one slot to the
// right is a step, and so is the final placement of the lifted key.
type Insertion struct {
	cursor
	i, j, key int
}

func NewInsertion(a Array, hl *Highlight) *Insertion {
	s := &Insertion{cursor: newCursor(a, hl), i: 1}
	s.lift()
	return s
}

func (s *Insertion) Name() string { return "insertion" }

func (s *Insertion) Advance() Step {
	if s.done {
		return noop
	}

	if s.j >= 0 && s.a[s.j] > s.key {
		s.hl.Set(s.i, s.j)
		s.a[s.j+1] = s.a[s.j]
		s.j--
		return s.result(OpWrite)
	}

	s.a[s.j+1] = s.key
	s.hl.Set(s.i, s.j+1)
	s.i++
	s.lift()
	return s.result(OpWrite)
}

// lift takes a[i] out as the key for the next insertion.
func (s *Insertion) lift() {
	if s.i >= len(s.a) {
		s.finish()
		return
	}
	s.key = s.a[s.i]
	s.j = s.i - 1
}
