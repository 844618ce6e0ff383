package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Cell is drawn once per row level of every column.
const Cell = "●"

// LevelColor is the gradient color of a filled cell at level (1 = bottom).
func LevelColor(t Theme, level, rows int) lipgloss.Color {
	if rows <= 1 {
		return t.High
	}
	return Blend(t.Low, t.High, float64(level-1)/float64(rows-1))
}

// CellColor colors the cell of column k at the given level. Cells above the
// column's value are empty; filled cells of highlighted columns take the
// highlight tint.
func CellColor(t Theme, a sorting.Array, hl sorting.Highlight, k, level, rows int) lipgloss.Color {
	if a[k] < level {
		return t.Empty
	}
	switch k {
	case hl.I:
		return t.HighlightI
	case hl.J:
		return t.HighlightJ
	}
	return LevelColor(t, level, rows)
}

// Grid renders arrays as columns of stacked cells, rows levels high. Styles
// are cached per color so a frame costs one render per color run.
type Grid struct {
	Theme  Theme
	Rows   int
	Gap    bool
	styles map[lipgloss.Color]lipgloss.Style
}

func NewGrid(t Theme, rows int) *Grid {
	return &Grid{Theme: t, Rows: rows, Gap: true, styles: make(map[lipgloss.Color]lipgloss.Style)}
}

func (g *Grid) SetTheme(t Theme) {
	g.Theme = t
	g.styles = make(map[lipgloss.Color]lipgloss.Style)
}

func (g *Grid) style(c lipgloss.Color) lipgloss.Style {
	s, ok := g.styles[c]
	if !ok {
		s = lipgloss.NewStyle().Foreground(c)
		g.styles[c] = s
	}
	return s
}

func (g *Grid) Render(a sorting.Array, hl sorting.Highlight) string {
	cell := Cell
	if g.Gap {
		cell += " "
	}

	var b strings.Builder
	var run strings.Builder
	for level := g.Rows; level >= 1; level-- {
		var current lipgloss.Color
		for k := range a {
			c := CellColor(g.Theme, a, hl, k, level, g.Rows)
			if k > 0 && c != current {
				b.WriteString(g.style(current).Render(run.String()))
				run.Reset()
			}
			current = c
			run.WriteString(cell)
		}
		if run.Len() > 0 {
			b.WriteString(g.style(current).Render(run.String()))
			run.Reset()
		}
		if level > 1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
