package driver_test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

type frame struct {
	a  sorting.Array
	hl sorting.Highlight
}

type recorder struct {
	frames []frame
	events []string
}

func (r *recorder) Paint(a sorting.Array, hl sorting.Highlight) {
	r.frames = append(r.frames, frame{a: a.Clone(), hl: hl})
}

func (r *recorder) Started(algorithm string) { r.events = append(r.events, "started:"+algorithm) }
func (r *recorder) Finished()                { r.events = append(r.events, "finished") }
func (r *recorder) Stopped()                 { r.events = append(r.events, "stopped") }

type factoryFunc func(name string, a sorting.Array, hl *sorting.Highlight) (sorting.Stepper, error)

func (f factoryFunc) New(name string, a sorting.Array, hl *sorting.Highlight) (sorting.Stepper, error) {
	return f(name, a, hl)
}

// wild sets an out-of-range highlight on its first step.
type wild struct{ hl *sorting.Highlight }

func (w *wild) Name() string { return "wild" }
func (w *wild) Done() bool   { return false }
func (w *wild) Advance() sorting.Step {
	w.hl.Set(99, 0)
	return sorting.Step{Op: sorting.OpCompare}
}

func stepsFor(name string, input sorting.Array) int {
	a := input.Clone()
	var hl sorting.Highlight
	s, err := experiment.NewRegistry().New(name, a, &hl)
	Expect(err).NotTo(HaveOccurred())
	n := 0
	for !s.Done() {
		s.Advance()
		n++
	}
	return n
}

var _ = Describe("Driver", func() {
	var (
		rec *recorder
		d   *driver.Driver
	)

	BeforeEach(func() {
		rec = &recorder{}
		d = driver.New(experiment.NewRegistry(), driver.WithRenderer(rec), driver.WithListener(rec))
	})

	Describe("Start", func() {
		It("begins in Idle", func() {
			Expect(d.State()).To(Equal(driver.Idle))
			Expect(d.Tick()).To(BeFalse())
			Expect(rec.frames).To(BeEmpty())
		})

		It("rejects an unknown algorithm and stays Idle", func() {
			err := d.Start("shell", sorting.Array{2, 1})
			Expect(err).To(MatchError(sorting.ErrUnknownAlgorithm))
			Expect(d.State()).To(Equal(driver.Idle))
			Expect(rec.events).To(BeEmpty())
		})

		It("rejects arrays outside the length limits", func() {
			err := d.Start("bubble", make(sorting.Array, 101))
			Expect(err).To(MatchError(sorting.ErrInvalidLength))
			Expect(d.State()).To(Equal(driver.Idle))

			strict := driver.New(experiment.NewRegistry(), driver.WithLimits(driver.Limits{MinLength: 5, MaxLength: 10}))
			Expect(strict.Start("bubble", sorting.Array{3, 2, 1})).To(MatchError(sorting.ErrInvalidLength))
		})

		It("rejects non-positive values", func() {
			Expect(d.Start("heap", sorting.Array{3, 0, 1})).To(MatchError(sorting.ErrInvalidValue))
			Expect(d.State()).To(Equal(driver.Idle))
		})

		It("runs over a private copy of the input", func() {
			input := sorting.Array{4, 2, 3, 1}
			Expect(d.Start("insertion", input)).To(Succeed())
			for d.Tick() {
			}
			Expect(input).To(Equal(sorting.Array{4, 2, 3, 1}))
			a, _ := d.Snapshot()
			Expect(a).To(Equal(sorting.Array{1, 2, 3, 4}))
		})

		It("implicitly stops an active run", func() {
			Expect(d.Start("bubble", sorting.Array{3, 2, 1})).To(Succeed())
			d.Tick()
			Expect(d.Start("quick", sorting.Array{9, 8})).To(Succeed())
			Expect(rec.events).To(Equal([]string{"started:bubble", "stopped", "started:quick"}))
			Expect(d.Algorithm()).To(Equal("quick"))
			Expect(d.Steps()).To(BeZero())
		})

		It("leaves an active run alone when the new start is invalid", func() {
			Expect(d.Start("bubble", sorting.Array{3, 2, 1})).To(Succeed())
			Expect(d.Start("shell", sorting.Array{3, 2, 1})).NotTo(Succeed())
			Expect(d.State()).To(Equal(driver.Running))
			Expect(d.Algorithm()).To(Equal("bubble"))
		})
	})

	Describe("Tick", func() {
		for _, name := range []string{"selection", "insertion", "bubble", "merge", "quick", "heap"} {
			name := name
			It(fmt.Sprintf("paints once per step of %s and finishes exactly once", name), func() {
				input := sorting.Array{5, 3, 1, 4, 2, 5, 9, 1}
				want := stepsFor(name, input)

				Expect(d.Start(name, input)).To(Succeed())
				ticks := 0
				for d.Tick() {
					ticks++
				}
				ticks++

				Expect(ticks).To(Equal(want))
				Expect(d.Steps()).To(Equal(want))
				Expect(rec.frames).To(HaveLen(want))
				Expect(rec.events).To(Equal([]string{"started:" + name, "finished"}))
				Expect(d.State()).To(Equal(driver.Finished))

				last := rec.frames[len(rec.frames)-1]
				Expect(last.a.IsSorted()).To(BeTrue())
				Expect(last.hl).To(Equal(sorting.NoHighlight))

				Expect(d.Tick()).To(BeFalse())
				Expect(rec.frames).To(HaveLen(want))
			})
		}

		It("shows every bubble step in order", func() {
			Expect(d.Start("bubble", sorting.Array{5, 3, 1, 4, 2})).To(Succeed())
			d.Tick()
			d.Tick()
			Expect(rec.frames[0]).To(Equal(frame{a: sorting.Array{5, 3, 1, 4, 2}, hl: sorting.Highlight{I: 0, J: 1}}))
			Expect(rec.frames[1]).To(Equal(frame{a: sorting.Array{3, 5, 1, 4, 2}, hl: sorting.Highlight{I: 0, J: 1}}))
		})

		It("finishes single element arrays without advancing", func() {
			Expect(d.Start("merge", sorting.Array{7})).To(Succeed())
			Expect(d.Tick()).To(BeFalse())
			Expect(d.Steps()).To(BeZero())
			Expect(rec.frames).To(HaveLen(1))
			Expect(d.State()).To(Equal(driver.Finished))
		})

		It("feeds every step to the metrics and resets them per run", func() {
			cmp, moves := metrics.NewComparisons(), metrics.NewMoves()
			d.AddMetric(cmp)
			d.AddMetric(moves)

			Expect(d.Start("selection", sorting.Array{2, 1})).To(Succeed())
			for d.Tick() {
			}
			Expect(cmp.Value()).To(Equal(1.0))
			Expect(moves.Value()).To(Equal(1.0))

			Expect(d.Start("selection", sorting.Array{1, 2})).To(Succeed())
			Expect(cmp.Value()).To(BeZero())
		})

		It("panics on a highlight outside the array", func() {
			f := factoryFunc(func(name string, a sorting.Array, hl *sorting.Highlight) (sorting.Stepper, error) {
				return &wild{hl: hl}, nil
			})
			d := driver.New(f)
			Expect(d.Start("wild", sorting.Array{1, 2})).To(Succeed())
			Expect(func() { d.Tick() }).To(PanicWith(BeAssignableToTypeOf(&sorting.InvariantError{})))
		})
	})

	Describe("Stop", func() {
		It("discards progress and is idempotent", func() {
			Expect(d.Start("bubble", sorting.Array{5, 4, 3, 2, 1})).To(Succeed())
			d.Tick()
			d.Tick()
			d.Stop()
			d.Stop()

			Expect(d.State()).To(Equal(driver.Stopped))
			Expect(d.Stepper()).To(BeNil())
			Expect(rec.events).To(Equal([]string{"started:bubble", "stopped"}))

			painted := len(rec.frames)
			Expect(d.Tick()).To(BeFalse())
			Expect(rec.frames).To(HaveLen(painted))
		})

		It("does nothing outside a run", func() {
			d.Stop()
			Expect(d.State()).To(Equal(driver.Idle))
			Expect(rec.events).To(BeEmpty())
		})

		It("lets a new run start independently of the stopped one", func() {
			Expect(d.Start("heap", sorting.Array{5, 4, 3, 2, 1})).To(Succeed())
			d.Tick()
			d.Stop()

			second := sorting.Array{9, 1, 8, 2}
			Expect(d.Start("heap", second)).To(Succeed())
			for d.Tick() {
			}
			Expect(d.Steps()).To(Equal(stepsFor("heap", second)))
			a, _ := d.Snapshot()
			Expect(a).To(Equal(sorting.Array{1, 2, 8, 9}))
		})
	})

	Describe("Run", func() {
		It("ticks to completion in fast mode", func() {
			d.SetCadence(driver.FastCadence)
			Expect(d.Start("quick", sorting.Array{9, 3, 7, 1, 8, 2})).To(Succeed())
			Expect(d.Run(context.Background())).To(Succeed())
			Expect(d.State()).To(Equal(driver.Finished))
			a, _ := d.Snapshot()
			Expect(a.IsSorted()).To(BeTrue())
		})

		It("ticks on a fixed interval", func() {
			d.SetCadence(driver.CadenceFromDelay(time.Millisecond))
			Expect(d.Start("selection", sorting.Array{2, 1})).To(Succeed())
			start := time.Now()
			Expect(d.Run(context.Background())).To(Succeed())
			Expect(time.Since(start)).To(BeNumerically(">=", 2*driver.MinInterval))
			Expect(rec.frames).To(HaveLen(2))
		})

		It("stops the run when the context is cancelled", func() {
			d.SetCadence(driver.Cadence{Interval: time.Hour})
			Expect(d.Start("bubble", sorting.Array{3, 2, 1})).To(Succeed())
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			Expect(d.Run(ctx)).To(MatchError(context.DeadlineExceeded))
			Expect(d.State()).To(Equal(driver.Stopped))
			Expect(rec.frames).To(BeEmpty())
		})

		It("applies a cadence change from the next tick on", func() {
			var d *driver.Driver
			painted := 0
			d = driver.New(experiment.NewRegistry(),
				driver.WithCadence(driver.FastCadence),
				driver.WithRenderer(driver.RendererFunc(func(a sorting.Array, hl sorting.Highlight) {
					painted++
					if painted == 3 {
						d.SetCadence(driver.Cadence{Interval: time.Hour})
					}
				})))
			Expect(d.Start("bubble", sorting.Array{9, 8, 7, 6, 5, 4, 3, 2, 1})).To(Succeed())

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
			defer cancel()
			Expect(d.Run(ctx)).To(MatchError(context.DeadlineExceeded))
			Expect(painted).To(Equal(3))
			Expect(d.State()).To(Equal(driver.Stopped))
		})

		It("returns once a renderer stops the run", func() {
			var d *driver.Driver
			d = driver.New(experiment.NewRegistry(),
				driver.WithCadence(driver.FastCadence),
				driver.WithRenderer(driver.RendererFunc(func(a sorting.Array, hl sorting.Highlight) {
					if d.Steps() == 4 {
						d.Stop()
					}
				})))
			Expect(d.Start("bubble", sorting.Array{9, 8, 7, 6, 5, 4, 3, 2, 1})).To(Succeed())
			Expect(d.Run(context.Background())).To(Succeed())
			Expect(d.State()).To(Equal(driver.Stopped))
			Expect(d.Steps()).To(Equal(4))
		})
	})
})
