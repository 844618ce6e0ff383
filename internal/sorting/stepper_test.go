package sorting_test

import (
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/sorting"
)

type newStepper func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper

var deterministic = map[string]newStepper{
	"selection": func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewSelection(a, hl) },
	"insertion": func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewInsertion(a, hl) },
	"bubble":    func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewBubble(a, hl) },
	"merge":     func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewMerge(a, hl) },
	"quick":     func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewQuick(a, hl) },
	"heap":      func(a sorting.Array, hl *sorting.Highlight) sorting.Stepper { return sorting.NewHeap(a, hl) },
}

// drain advances s until done, checking the highlight after every step, and
// returns the ops performed.
func drain(s sorting.Stepper, a sorting.Array, hl *sorting.Highlight) []sorting.Op {
	var ops []sorting.Op
	for !s.Done() {
		step := s.Advance()
		Expect(step.Op).NotTo(Equal(sorting.OpNone))
		Expect(hl.Validate(len(a))).To(Succeed())
		ops = append(ops, step.Op)
		Expect(step.Done).To(Equal(s.Done()))
		Expect(len(ops)).To(BeNumerically("<", 100_000), "stepper did not terminate")
	}
	return ops
}

func randomArray(rng *rand.Rand, n, rows int) sorting.Array {
	a := make(sorting.Array, n)
	for i := range a {
		a[i] = rng.Intn(rows) + 1
	}
	return a
}

var _ = Describe("Stepper", func() {
	for name, ctor := range deterministic {
		name, ctor := name, ctor

		Describe(name, func() {
			It("sorts random inputs into a permutation of the input", func() {
				rng := rand.New(rand.NewSource(7))
				for trial := 0; trial < 60; trial++ {
					input := randomArray(rng, rng.Intn(40), 30)
					a := input.Clone()
					var hl sorting.Highlight
					s := ctor(a, &hl)
					drain(s, a, &hl)

					want := input.Clone()
					slices.Sort(want)
					Expect(a).To(Equal(want), "input %v", input)
					Expect(hl).To(Equal(sorting.NoHighlight))
				}
			})

			It("sorts reversed, sorted and constant inputs", func() {
				for _, input := range []sorting.Array{
					{9, 8, 7, 6, 5, 4, 3, 2, 1},
					{1, 2, 3, 4, 5, 6},
					{4, 4, 4, 4, 4},
					{2, 1, 2, 1, 2, 1, 3},
				} {
					a := input.Clone()
					var hl sorting.Highlight
					drain(ctor(a, &hl), a, &hl)
					Expect(a.IsSorted()).To(BeTrue(), "input %v gave %v", input, a)
				}
			})

			It("takes the same number of steps for the same input", func() {
				input := sorting.Array{12, 3, 30, 3, 7, 19, 1, 25, 7, 8}
				a1, a2 := input.Clone(), input.Clone()
				var h1, h2 sorting.Highlight
				Expect(drain(ctor(a1, &h1), a1, &h1)).To(Equal(drain(ctor(a2, &h2), a2, &h2)))
			})

			It("completes arrays of length 0 and 1 without any step", func() {
				for _, input := range []sorting.Array{{}, {5}} {
					hl := sorting.Highlight{I: 0, J: 0}
					s := ctor(input, &hl)
					Expect(s.Done()).To(BeTrue())
					Expect(hl.IsSet()).To(BeFalse())
				}
			})

			It("keeps returning done once finished", func() {
				a := sorting.Array{3, 1, 2}
				var hl sorting.Highlight
				s := ctor(a, &hl)
				drain(s, a, &hl)
				for i := 0; i < 3; i++ {
					Expect(s.Advance()).To(Equal(sorting.Step{Op: sorting.OpNone, Done: true}))
				}
				Expect(a).To(Equal(sorting.Array{1, 2, 3}))
				Expect(hl).To(Equal(sorting.NoHighlight))
			})

			It("reports its name", func() {
				Expect(ctor(sorting.Array{}, nil).Name()).To(Equal(name))
			})
		})
	}

	DescribeTable("step counts on [3,1,2]",
		func(name string, want []sorting.Op) {
			a := sorting.Array{3, 1, 2}
			var hl sorting.Highlight
			Expect(drain(deterministic[name](a, &hl), a, &hl)).To(Equal(want))
		},
		Entry("selection", "selection", []sorting.Op{
			sorting.OpCompare, sorting.OpCompare, sorting.OpSwap, sorting.OpCompare, sorting.OpSwap,
		}),
		Entry("insertion", "insertion", []sorting.Op{
			sorting.OpWrite, sorting.OpWrite, sorting.OpWrite, sorting.OpWrite,
		}),
		Entry("bubble", "bubble", []sorting.Op{
			sorting.OpCompare, sorting.OpSwap, sorting.OpCompare, sorting.OpSwap, sorting.OpCompare,
		}),
		Entry("quick", "quick", []sorting.Op{
			sorting.OpCompare, sorting.OpCompare, sorting.OpSwap, sorting.OpSwap,
		}),
		Entry("heap", "heap", []sorting.Op{
			sorting.OpSwap, sorting.OpSwap,
		}),
	)

	Describe("bubble on [5,3,1,4,2]", func() {
		It("compares the first pair, then swaps it, and ends sorted", func() {
			a := sorting.Array{5, 3, 1, 4, 2}
			var hl sorting.Highlight
			s := sorting.NewBubble(a, &hl)

			step := s.Advance()
			Expect(step).To(Equal(sorting.Step{Op: sorting.OpCompare}))
			Expect(hl).To(Equal(sorting.Highlight{I: 0, J: 1}))
			Expect(a).To(Equal(sorting.Array{5, 3, 1, 4, 2}))

			step = s.Advance()
			Expect(step).To(Equal(sorting.Step{Op: sorting.OpSwap}))
			Expect(hl).To(Equal(sorting.Highlight{I: 0, J: 1}))
			Expect(a).To(Equal(sorting.Array{3, 5, 1, 4, 2}))

			drain(s, a, &hl)
			Expect(a).To(Equal(sorting.Array{1, 2, 3, 4, 5}))
		})
	})

	Describe("selection on [2,1]", func() {
		It("finishes in exactly one comparison and one swap", func() {
			a := sorting.Array{2, 1}
			var hl sorting.Highlight
			s := sorting.NewSelection(a, &hl)

			Expect(s.Advance()).To(Equal(sorting.Step{Op: sorting.OpCompare}))
			Expect(hl).To(Equal(sorting.Highlight{I: 0, J: 1}))
			Expect(s.Advance()).To(Equal(sorting.Step{Op: sorting.OpSwap, Done: true}))
			Expect(a).To(Equal(sorting.Array{1, 2}))
			Expect(hl).To(Equal(sorting.NoHighlight))
		})
	})

	Describe("ties", func() {
		It("never swap equal values in selection or bubble", func() {
			for _, name := range []string{"selection", "bubble"} {
				a := sorting.Array{6, 6, 6, 6}
				var hl sorting.Highlight
				for _, op := range drain(deterministic[name](a, &hl), a, &hl) {
					Expect(op).To(Equal(sorting.OpCompare), name)
				}
			}
		})
	})

	Describe("merge", func() {
		It("writes every element twice per pass", func() {
			a := sorting.Array{4, 3, 2, 1}
			var hl sorting.Highlight
			ops := drain(sorting.NewMerge(a, &hl), a, &hl)
			// two passes (width 1 and 2), each with n aux writes and n copy-backs
			Expect(ops).To(HaveLen(16))
			Expect(a).To(Equal(sorting.Array{1, 2, 3, 4}))
		})

		It("carries an odd tail block through every pass", func() {
			a := sorting.Array{5, 4, 3, 2, 1}
			var hl sorting.Highlight
			ops := drain(sorting.NewMerge(a, &hl), a, &hl)
			Expect(ops).To(HaveLen(30))
			Expect(a).To(Equal(sorting.Array{1, 2, 3, 4, 5}))
		})
	})

	Describe("heap", func() {
		It("bounds sift-down by the shrinking heap", func() {
			a := sorting.Array{1, 2, 3}
			var hl sorting.Highlight
			s := sorting.NewHeap(a, &hl)

			Expect(s.Advance().Op).To(Equal(sorting.OpSwap))
			Expect(a).To(Equal(sorting.Array{3, 2, 1}))
			Expect(hl).To(Equal(sorting.Highlight{I: 0, J: 2}))

			Expect(s.Advance().Op).To(Equal(sorting.OpSwap))
			Expect(a).To(Equal(sorting.Array{1, 2, 3}))

			Expect(s.Advance().Op).To(Equal(sorting.OpSwap))
			Expect(a).To(Equal(sorting.Array{2, 1, 3}))

			Expect(s.Advance()).To(Equal(sorting.Step{Op: sorting.OpSwap, Done: true}))
			Expect(a).To(Equal(sorting.Array{1, 2, 3}))
		})
	})
})

var _ = Describe("Bogo", func() {
	It("is done immediately on a sorted array", func() {
		a := sorting.Array{1, 2, 2, 3}
		var hl sorting.Highlight
		s := sorting.NewBogo(a, &hl, rand.New(rand.NewSource(1)), 10)
		Expect(s.Done()).To(BeTrue())
		Expect(s.Capped()).To(BeFalse())
	})

	It("eventually sorts a small array", func() {
		a := sorting.Array{3, 1, 2}
		var hl sorting.Highlight
		s := sorting.NewBogo(a, &hl, rand.New(rand.NewSource(42)), 0)
		ops := drain(s, a, &hl)
		Expect(a).To(Equal(sorting.Array{1, 2, 3}))
		Expect(s.Capped()).To(BeFalse())
		Expect(s.Attempts()).To(Equal(len(ops)))
	})

	It("declares done at the attempt ceiling even when unsorted", func() {
		a := sorting.Array{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
		var hl sorting.Highlight
		s := sorting.NewBogo(a, &hl, rand.New(rand.NewSource(3)), 5)
		ops := drain(s, a, &hl)
		Expect(ops).To(HaveLen(5))
		Expect(s.Capped()).To(BeTrue())
		Expect(a.IsSorted()).To(BeFalse())
		Expect(hl).To(Equal(sorting.NoHighlight))
	})

	It("replays the same shuffles for the same seed", func() {
		a1 := sorting.Array{5, 4, 3, 2, 1}
		a2 := a1.Clone()
		var h1, h2 sorting.Highlight
		s1 := sorting.NewBogo(a1, &h1, rand.New(rand.NewSource(9)), 50)
		s2 := sorting.NewBogo(a2, &h2, rand.New(rand.NewSource(9)), 50)
		drain(s1, a1, &h1)
		drain(s2, a2, &h2)
		Expect(a1).To(Equal(a2))
		Expect(s1.Attempts()).To(Equal(s2.Attempts()))
	})
})
