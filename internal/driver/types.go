package driver

import (
	"github.com/san-kum/sortviz/internal/sorting"
)

// State is the lifecycle state of a Driver.
type State int

const (
	Idle State = iota
	Running
	Finished
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Stopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Factory builds the stepper for an algorithm name, bound to a and hl.
type Factory interface {
	New(name string, a sorting.Array, hl *sorting.Highlight) (sorting.Stepper, error)
}

// Renderer paints the array after every tick. Implementations must treat
// both arguments as read-only.
type Renderer interface {
	Paint(a sorting.Array, hl sorting.Highlight)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(a sorting.Array, hl sorting.Highlight)

func (f RendererFunc) Paint(a sorting.Array, hl sorting.Highlight) { f(a, hl) }

// Listener receives lifecycle notifications.
type Listener interface {
	Started(algorithm string)
	Finished()
	Stopped()
}

// ListenerFuncs adapts optional callbacks to Listener.
type ListenerFuncs struct {
	OnStarted  func(algorithm string)
	OnFinished func()
	OnStopped  func()
}

func (l ListenerFuncs) Started(algorithm string) {
	if l.OnStarted != nil {
		l.OnStarted(algorithm)
	}
}

func (l ListenerFuncs) Finished() {
	if l.OnFinished != nil {
		l.OnFinished()
	}
}

func (l ListenerFuncs) Stopped() {
	if l.OnStopped != nil {
		l.OnStopped()
	}
}

// Metric observes every step of a run.
type Metric interface {
	Name() string
	Observe(step sorting.Step, a sorting.Array, hl sorting.Highlight)
	Value() float64
	Reset()
}

// Initializer is implemented by metrics that read the array a run starts
// from. Start calls Init after Reset.
type Initializer interface {
	Init(a sorting.Array)
}

// Limits bounds the arrays Start accepts.
type Limits struct {
	MinLength int
	MaxLength int
}

var DefaultLimits = Limits{MinLength: 0, MaxLength: 100}
