// Package driver owns the lifecycle of a sort run and the cadence at which
// its stepper is advanced.
//
// A [Driver] holds at most one live [sorting.Stepper]. Each [Driver.Tick]
// advances it by exactly one unit of work and paints the result through the
// configured [Renderer]; nothing is batched, so every comparison and every
// movement is observable. Ticks are issued either by [Driver.Run], which
// honours the configured [Cadence], or by a host event loop such as Bubble
// Tea that calls Tick itself.
//
// # Lifecycle
//
//	Idle -> Running -> Finished
//	             \---> Stopped
//
// Finished and Stopped only lead back to Running through a new Start.
//
// # Thread Safety
//
// Driver instances are NOT thread-safe. A single goroutine (the Run loop or
// the UI update loop) must own the driver. To stop a Run from elsewhere,
// cancel the context passed to it.
package driver
