package sorting

// Heap is heapsort on an array-based binary max-heap. Building the heap and
// extracting from it both sift down; each sift-down swap is a step, and so
// is the swap of the root with the end of the shrinking heap.
type Heap struct {
	cursor
	building bool
	start    int // next build root
	end      int // heap boundary during extraction
	root     int
	child    int // pending sift swap target, Unset when none
}

func NewHeap(a Array, hl *Highlight) *Heap {
	n := len(a)
	s := &Heap{cursor: newCursor(a, hl), building: true, start: n/2 - 1, end: n - 1}
	s.nextBuildRoot()
	return s
}

func (s *Heap) Name() string { return "heap" }

func (s *Heap) Advance() Step {
	if s.done {
		return noop
	}

	if s.child != Unset {
		s.a.swap(s.root, s.child)
		s.hl.Set(s.root, s.child)
		s.root = s.child
		s.sift()
		return s.result(OpSwap)
	}

	s.a.swap(0, s.end)
	s.hl.Set(0, s.end)
	s.root = 0
	s.sift()
	return s.result(OpSwap)
}

// bound is the exclusive heap limit for the current phase.
func (s *Heap) bound() int {
	if s.building {
		return len(s.a)
	}
	return s.end
}

// sift finds the next swap for the root being sifted down. When the root
// has settled it moves on to the next build root or extraction.
func (s *Heap) sift() {
	s.child = s.largerChild(s.root, s.bound())
	if s.child != Unset {
		return
	}
	if s.building {
		s.start--
		s.nextBuildRoot()
		return
	}
	s.end--
	s.nextExtraction()
}

func (s *Heap) nextBuildRoot() {
	for s.start >= 0 {
		s.root = s.start
		s.child = s.largerChild(s.root, len(s.a))
		if s.child != Unset {
			return
		}
		s.start--
	}
	s.building = false
	s.nextExtraction()
}

func (s *Heap) nextExtraction() {
	s.child = Unset
	if s.end <= 0 {
		s.finish()
	}
}

// largerChild returns the child of root to swap with, or Unset when the
// heap property already holds at root within [0, bound).
func (s *Heap) largerChild(root, bound int) int {
	c := 2*root + 1
	if c >= bound {
		return Unset
	}
	target := root
	if s.a[target] < s.a[c] {
		target = c
	}
	if c+1 < bound && s.a[target] < s.a[c+1] {
		target = c + 1
	}
	if target == root {
		return Unset
	}
	return target
}
