// Package sorting provides sorting algorithms expressed as resumable steppers.
//
// Each algorithm is a small state machine that performs exactly one unit of
// observable work per call to Advance: a comparison or an element movement.
// The stepper mutates a shared [Array] in place and records the indices it
// touched in a [Highlight] so a renderer can paint every step:
//
//   - [Selection]: one step per comparison, one per minimum swap
//   - [Insertion]: one step per shift, one per key placement
//   - [Bubble]: one step per adjacent comparison, one per swap
//   - [Merge]: bottom-up, one step per auxiliary write and per copy-back
//   - [Quick]: explicit range stack, Lomuto partition, last-element pivot
//   - [Heap]: one step per sift-down swap and per root/end swap
//   - [Bogo]: one step per shuffle, bounded by an attempt ceiling
//
// # Example
//
//	a := sorting.Array{5, 3, 1, 4, 2}
//	var hl sorting.Highlight
//	s := sorting.NewBubble(a, &hl)
//	for !s.Done() {
//	    s.Advance()
//	    paint(a, hl)
//	}
//
// # Thread Safety
//
// Steppers are NOT thread-safe. The Array and Highlight a stepper was created
// against must only be touched by the goroutine advancing it.
package sorting
