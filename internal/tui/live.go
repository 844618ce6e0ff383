package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws the whole array on every paint using plain ANSI
// escapes. It is both the driver's renderer and a lifecycle listener.
type LiveRenderer struct {
	w         io.Writer
	rows      int
	grid      *viz.Grid
	algorithm string
	frames    int
	steps     func() int
	canvas    [][]rune
}

// NewLiveRenderer draws to w. With a nil grid the columns are drawn as plain
// runes; otherwise the grid's theme colors them.
func NewLiveRenderer(w io.Writer, rows int, grid *viz.Grid) *LiveRenderer {
	return &LiveRenderer{w: w, rows: rows, grid: grid}
}

func (r *LiveRenderer) Frames() int { return r.frames }

// Follow reads the step count from d for the end-of-run summary. A run that
// finishes without advancing still paints once.
func (r *LiveRenderer) Follow(d *driver.Driver) { r.steps = d.Steps }

func (r *LiveRenderer) Started(algorithm string) {
	r.algorithm = algorithm
	r.frames = 0
	fmt.Fprint(r.w, hideCursor)
}

func (r *LiveRenderer) Finished() { r.end("finished") }
func (r *LiveRenderer) Stopped()  { r.end("stopped") }

func (r *LiveRenderer) end(status string) {
	if r.steps != nil {
		fmt.Fprintf(r.w, "  %s %s after %d steps\n", r.algorithm, status, r.steps())
	} else {
		fmt.Fprintf(r.w, "  %s %s after %d frames\n", r.algorithm, status, r.frames)
	}
	fmt.Fprint(r.w, showCursor)
}

func (r *LiveRenderer) Paint(a sorting.Array, hl sorting.Highlight) {
	r.frames++

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  frame %d  %s\n", r.algorithm, r.frames, hl))
	b.WriteString("  " + strings.Repeat("-", len(a)) + "\n")

	if r.grid != nil {
		for _, line := range strings.Split(r.grid.Render(a, hl), "\n") {
			b.WriteString("  " + line + "\n")
		}
	} else {
		r.draw(a)
		for _, row := range r.canvas {
			b.WriteString("  ")
			b.WriteString(string(row))
			b.WriteString("\n")
		}
	}

	b.WriteString("  " + markers(len(a), hl) + "\n")
	fmt.Fprint(r.w, b.String())
}

func (r *LiveRenderer) draw(a sorting.Array) {
	if len(r.canvas) != r.rows || (r.rows > 0 && len(r.canvas[0]) != len(a)) {
		r.canvas = make([][]rune, r.rows)
		for i := range r.canvas {
			r.canvas[i] = make([]rune, len(a))
		}
	}
	for y := range r.canvas {
		level := r.rows - y
		for x, v := range a {
			if v >= level {
				r.canvas[y][x] = '#'
			} else {
				r.canvas[y][x] = ' '
			}
		}
	}
}

// markers points at the highlighted columns: ^ for I and * for J.
func markers(n int, hl sorting.Highlight) string {
	row := []rune(strings.Repeat(" ", n))
	if hl.J >= 0 && hl.J < n {
		row[hl.J] = '*'
	}
	if hl.I >= 0 && hl.I < n {
		row[hl.I] = '^'
	}
	return strings.TrimRight(string(row), " ")
}
