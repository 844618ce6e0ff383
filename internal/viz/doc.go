// Package viz is the interactive terminal visualizer built on Bubble Tea.
//
// The array is drawn as columns of stacked cells, one column per element and
// one cell per unit of value. Filled cells blend along the theme gradient by
// row level; the two highlighted columns take the theme's highlight tints.
//
//   - [App]: algorithm menu and run screen
//   - [Grid]: column renderer shared with the headless outputs
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	s     - Start a run on a fresh array
//	x     - Stop the run
//	+/-   - Shorter/longer tick delay (shortest is fast mode)
//	[/]   - Smaller/larger array for the next run
//	p     - Cycle input pattern
//	t     - Cycle color themes
//	esc   - Back to the menu
//
// Ticks are scheduled as Bubble Tea commands tagged with the driver
// generation, so ticks left over from a stopped or restarted run are ignored.
package viz
