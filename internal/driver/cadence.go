package driver

import (
	"fmt"
	"time"
)

const (
	// Quantum is the smallest delay that still schedules timed ticks; any
	// shorter delay selects fast mode.
	Quantum = time.Millisecond

	// MinInterval keeps timed ticks from degenerating into a runaway timer.
	MinInterval = 5 * time.Millisecond

	DefaultDelay = 100 * time.Millisecond

	// FastYieldEvery is how many fast ticks run between scheduler yields.
	FastYieldEvery = 64
)

// Cadence decides how ticks are scheduled: every Interval, or back to back
// when Fast is set.
type Cadence struct {
	Interval time.Duration
	Fast     bool
}

// FastCadence ticks as fast as the host can schedule.
var FastCadence = Cadence{Fast: true}

// CadenceFromDelay maps a configured delay to a cadence. Delays under one
// quantum select fast mode; the rest are clamped to MinInterval.
func CadenceFromDelay(d time.Duration) Cadence {
	if d < Quantum {
		return FastCadence
	}
	if d < MinInterval {
		d = MinInterval
	}
	return Cadence{Interval: d}
}

func (c Cadence) String() string {
	if c.Fast {
		return "fast"
	}
	return fmt.Sprintf("every %s", c.Interval)
}
