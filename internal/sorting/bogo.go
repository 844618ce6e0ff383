package sorting

import "math/rand"

// DefaultMaxAttempts bounds bogo sort so a run always terminates.
const DefaultMaxAttempts = 1_000_000

// Bogo shuffles the whole array once per step until it happens to be sorted.
// After maxAttempts shuffles it declares itself done even if the array is
// still unsorted; Capped reports when that happened.
type Bogo struct {
	cursor
	rng         *rand.Rand
	attempts    int
	maxAttempts int
	capped      bool
}

func NewBogo(a Array, hl *Highlight, rng *rand.Rand, maxAttempts int) *Bogo {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	s := &Bogo{cursor: newCursor(a, hl), rng: rng, maxAttempts: maxAttempts}
	s.check()
	return s
}

func (s *Bogo) Name() string { return "bogo" }

func (s *Bogo) Advance() Step {
	if s.done {
		return noop
	}

	s.rng.Shuffle(len(s.a), s.a.swap)
	s.attempts++
	s.hl.Set(0, len(s.a)-1)
	s.check()
	return s.result(OpShuffle)
}

func (s *Bogo) Attempts() int { return s.attempts }

// Capped reports whether the run ended at the attempt ceiling rather than
// on a sorted array.
func (s *Bogo) Capped() bool { return s.capped }

func (s *Bogo) check() {
	if s.a.IsSorted() {
		s.finish()
		return
	}
	if s.attempts >= s.maxAttempts {
		s.capped = true
		s.finish()
	}
}
