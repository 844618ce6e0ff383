package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/analysis"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
)

const historyCapacity = 240

// Delays offered by the +/- keys, fastest first. Zero is fast mode.
var delaySteps = []int{0, 5, 10, 20, 50, 100, 200, 500, 1000}

// tickMsg carries the driver generation it was scheduled for; a tick from an
// older generation belongs to a run that has since ended and is dropped.
type tickMsg struct {
	gen uint64
}

// record is the driver's renderer. The frame itself is drawn by View; each
// paint contributes one sortedness sample.
func (m *App) record(a sorting.Array, hl sorting.Highlight) {
	if len(m.history) == historyCapacity {
		copy(m.history, m.history[1:])
		m.history = m.history[:historyCapacity-1]
	}
	m.history = append(m.history, analysis.Sortedness(a))
}

func (m *App) tick(msg tickMsg) tea.Cmd {
	if msg.gen != m.drv.Generation() {
		return nil
	}
	if !m.drv.Tick() {
		return nil
	}
	return m.schedule()
}

func (m *App) schedule() tea.Cmd {
	gen := m.drv.Generation()
	c := m.drv.Cadence()
	if c.Fast {
		return func() tea.Msg { return tickMsg{gen: gen} }
	}
	return tea.Tick(c.Interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m *App) start() tea.Cmd {
	m.registry.Seed = m.rng.Int63()
	m.regenerate()
	m.history = m.history[:0]
	if err := m.drv.Start(m.cfg.Algorithm, m.preview); err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	m.ready = false
	return m.schedule()
}

// regenerate draws a new preview array and shows it until the next start.
func (m *App) regenerate() {
	m.preview = config.Generate(m.rng, m.cfg.Pattern, m.cfg.Size, m.cfg.Rows)
	m.grid.Gap = m.cfg.Size <= 60
	m.ready = true
}

func (m *App) runKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.drv.Stop()
		return tea.Quit
	case "esc", "m":
		m.drv.Stop()
		m.state = stateMenu
	case "s":
		return m.start()
	case "x":
		m.drv.Stop()
	case "+", "=":
		m.setDelay(stepDelay(m.cfg.DelayMs, -1))
	case "-", "_":
		m.setDelay(stepDelay(m.cfg.DelayMs, 1))
	case "[":
		m.resize(m.cfg.Size - 5)
	case "]":
		m.resize(m.cfg.Size + 5)
	case "p":
		m.cfg.Pattern = nextPattern(m.cfg.Pattern)
		if m.drv.State() != driver.Running {
			m.regenerate()
		}
	case "t":
		m.grid.SetTheme(NextTheme(m.grid.Theme.Name))
		m.cfg.Theme = m.grid.Theme.Name
	}
	return nil
}

// setDelay takes effect from the next scheduled tick.
func (m *App) setDelay(ms int) {
	m.cfg.DelayMs = ms
	m.drv.SetCadence(driver.CadenceFromDelay(m.cfg.Delay()))
}

// resize applies to the next run; an idle screen shows a new preview at once.
func (m *App) resize(n int) {
	m.cfg.Size = config.ClampSize(n)
	if m.drv.State() != driver.Running {
		m.regenerate()
	}
}

func stepDelay(current, dir int) int {
	idx := len(delaySteps) - 1
	for i, d := range delaySteps {
		if d >= current {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(delaySteps) {
		idx = len(delaySteps) - 1
	}
	return delaySteps[idx]
}

func nextPattern(p string) string {
	ps := config.Patterns()
	for i, q := range ps {
		if q == p {
			return ps[(i+1)%len(ps)]
		}
	}
	return ps[0]
}

// statusText is the one-line run status shown above the stats.
func statusText(s driver.State, algorithm string) string {
	switch s {
	case driver.Running:
		return fmt.Sprintf("Running %s...", algorithm)
	case driver.Finished:
		return "Finished"
	case driver.Stopped:
		return "Stopped"
	default:
		return "Ready"
	}
}

func (m *App) frame() (sorting.Array, sorting.Highlight) {
	if m.ready {
		return m.preview, sorting.NoHighlight
	}
	return m.drv.Snapshot()
}

func (m *App) runState() driver.State {
	if m.ready {
		return driver.Idle
	}
	return m.drv.State()
}

func (m *App) viewRun() string {
	t := m.grid.Theme
	a, hl := m.frame()
	left := gridStyle.Render(m.grid.Render(a, hl))

	header := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1)
	var s strings.Builder
	s.WriteString(header.Render(strings.ToUpper(m.cfg.Algorithm)) + "\n")
	s.WriteString(Subtle.Render(m.registry.Describe(m.cfg.Algorithm)) + "\n\n")

	state := m.runState()
	statusColor := t.Muted
	switch state {
	case driver.Running:
		statusColor = t.Success
	case driver.Finished:
		statusColor = t.Primary
	case driver.Stopped:
		statusColor = t.Warning
	}
	s.WriteString(lipgloss.NewStyle().Foreground(statusColor).Bold(true).Render(statusText(state, m.cfg.Algorithm)) + "\n\n")

	delay := "fast"
	if m.cfg.DelayMs > 0 {
		delay = m.drv.Cadence().Interval.String()
	}
	stat := func(label, value string) {
		s.WriteString(MetricLabel.Render(label) + MetricValue.Render(value) + "\n")
	}
	if state != driver.Idle {
		stat("steps", fmt.Sprintf("%d", m.drv.Steps()))
		stat("comparisons", fmt.Sprintf("%.0f", m.comparisons.Value()))
		stat("moves", fmt.Sprintf("%.0f", m.moves.Value()))
	}
	stat("size", fmt.Sprintf("%d", m.cfg.Size))
	stat("pattern", m.cfg.Pattern)
	stat("delay", delay)
	stat("theme", t.Name)

	sorted := analysis.Sortedness(a)
	s.WriteString("\n" + MetricLabel.Render("sortedness") + ProgressBar(sorted, 20) + fmt.Sprintf(" %3.0f%%", sorted*100) + "\n")
	if len(m.history) >= 2 && state != driver.Idle {
		plot := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Precision(2))
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(t.High).Render(plot) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(t.Error).Render(m.err.Error()) + "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, statsStyle.Render(s.String()))
	help := "\n  " + keyHelp("s", "start", "x", "stop", "+/-", "speed", "[/]", "size", "p", "pattern", "t", "theme", "esc", "menu", "q", "quit")
	return "\n" + body + "\n" + help + "\n"
}
