package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

// Cell geometry of the frame snapshot, in SVG user units.
const (
	CellSize   = 12.0
	CellGap    = 3.0
	CellRadius = CellSize / 2
	margin     = 10.0
)

// ArrayToSVG draws one frame as a grid of circles: one column per element,
// rows levels high, colored like the terminal grid.
func ArrayToSVG(a sorting.Array, hl sorting.Highlight, rows int, theme viz.Theme) string {
	if len(a) == 0 || rows <= 0 {
		return ""
	}

	pitch := CellSize + CellGap
	width := 2*margin + float64(len(a))*pitch - CellGap
	height := 2*margin + float64(rows)*pitch - CellGap

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for k := range a {
		cx := margin + float64(k)*pitch + CellRadius
		for level := 1; level <= rows; level++ {
			cy := height - margin - float64(level-1)*pitch - CellRadius
			color := viz.CellColor(theme, a, hl, k, level, rows)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, CellRadius, color))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ProgressToSVG plots sortedness samples in [0,1] as a polyline.
func ProgressToSVG(samples []float64, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	last := float64(len(samples) - 1)
	for i, v := range samples {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		x := float64(i) / last * float64(width)
		y := float64(height) - v*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
