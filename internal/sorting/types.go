package sorting

import "fmt"

// Unset marks a highlight slot that refers to no index.
const Unset = -1

// Array is the sequence being sorted. Values are positive integers; equal
// values may repeat.
type Array []int

func (a Array) Clone() Array {
	c := make(Array, len(a))
	copy(c, a)
	return c
}

func (a Array) IsSorted() bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}

func (a Array) Max() int {
	m := 0
	for _, v := range a {
		if v > m {
			m = v
		}
	}
	return m
}

func (a Array) swap(i, j int) { a[i], a[j] = a[j], a[i] }

// Highlight holds at most two indices under examination. It is presentation
// only; steppers never read it back.
type Highlight struct {
	I, J int
}

// NoHighlight is the cleared highlight.
var NoHighlight = Highlight{I: Unset, J: Unset}

func (h *Highlight) Set(i, j int) { h.I, h.J = i, j }

func (h *Highlight) Clear() { *h = NoHighlight }

func (h Highlight) IsSet() bool { return h.I != Unset || h.J != Unset }

// Has reports whether idx is one of the highlighted indices.
func (h Highlight) Has(idx int) bool {
	return idx != Unset && (h.I == idx || h.J == idx)
}

// Validate checks that every set index lies in [0, n).
func (h Highlight) Validate(n int) error {
	for _, idx := range [2]int{h.I, h.J} {
		if idx == Unset {
			continue
		}
		if idx < 0 || idx >= n {
			return fmt.Errorf("highlight index %d out of range [0,%d)", idx, n)
		}
	}
	return nil
}

func (h Highlight) String() string {
	return fmt.Sprintf("{%s,%s}", slot(h.I), slot(h.J))
}

func slot(i int) string {
	if i == Unset {
		return "-"
	}
	return fmt.Sprint(i)
}

// Op classifies the unit of work a step performed.
type Op uint8

const (
	OpNone Op = iota
	OpCompare
	OpSwap
	OpWrite
	OpShuffle
)

func (o Op) String() string {
	switch o {
	case OpCompare:
		return "compare"
	case OpSwap:
		return "swap"
	case OpWrite:
		return "write"
	case OpShuffle:
		return "shuffle"
	default:
		return "none"
	}
}

// IsMove reports whether the op mutated the array.
func (o Op) IsMove() bool {
	return o == OpSwap || o == OpWrite || o == OpShuffle
}

// Step is the outcome of one Advance call.
type Step struct {
	Op   Op
	Done bool
}

// Stepper is an algorithm suspended between units of work.
//
// Advance performs exactly one unit of work when the stepper is not done and
// reports whether any work remains. Once done, Advance is a no-op returning
// Step{Op: OpNone, Done: true} and the highlight stays cleared.
type Stepper interface {
	Name() string
	Advance() Step
	Done() bool
}

// cursor carries the state every stepper shares: the array and highlight it
// was bound to and whether the algorithm has finished.
type cursor struct {
	a    Array
	hl   *Highlight
	done bool
}

func newCursor(a Array, hl *Highlight) cursor {
	if hl == nil {
		hl = &Highlight{}
	}
	hl.Clear()
	return cursor{a: a, hl: hl}
}

func (c *cursor) Done() bool { return c.done }

func (c *cursor) finish() {
	c.done = true
	c.hl.Clear()
}

func (c *cursor) result(op Op) Step {
	return Step{Op: op, Done: c.done}
}

var noop = Step{Op: OpNone, Done: true}
