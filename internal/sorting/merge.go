package sorting

// Merge is iterative bottom-up merge sort. Runs of width 1, 2, 4, ... are
// merged pairwise into an auxiliary buffer, one element per step, then copied
// back one element per step. The buffer spans the whole array and is reused
// across passes without being cleared; only the active [left,right) span is
// ever read.
type Merge struct {
	cursor
	aux   Array
	width int
	start int

	left, mid, right int
	l, r, k          int
	t                int
	copying          bool
}

func NewMerge(a Array, hl *Highlight) *Merge {
	s := &Merge{cursor: newCursor(a, hl), aux: make(Array, len(a)), width: 1}
	if s.width >= len(a) {
		s.finish()
		return s
	}
	s.beginBlock()
	return s
}

func (s *Merge) Name() string { return "merge" }

func (s *Merge) Advance() Step {
	if s.done {
		return noop
	}

	if s.copying {
		s.a[s.t] = s.aux[s.t]
		s.hl.Set(s.t, Unset)
		s.t++
		if s.t >= s.right {
			s.copying = false
			s.start += 2 * s.width
			s.beginBlock()
		}
		return s.result(OpWrite)
	}

	s.hl.Set(s.left, min(len(s.a)-1, s.r))
	if s.r >= s.right || (s.l < s.mid && s.a[s.l] <= s.a[s.r]) {
		s.aux[s.k] = s.a[s.l]
		s.l++
	} else {
		s.aux[s.k] = s.a[s.r]
		s.r++
	}
	s.k++
	if s.l >= s.mid && s.r >= s.right {
		s.copying = true
		s.t = s.left
	}
	return s.result(OpWrite)
}

// beginBlock sets up the merge of the block at start, moving on to the next
// width once the pass is exhausted.
func (s *Merge) beginBlock() {
	n := len(s.a)
	for s.start >= n {
		s.width *= 2
		s.start = 0
		if s.width >= n {
			s.finish()
			return
		}
	}
	s.left = s.start
	s.mid = min(s.start+s.width, n)
	s.right = min(s.start+2*s.width, n)
	s.l, s.r, s.k = s.left, s.mid, s.left
}
