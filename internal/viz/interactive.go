package viz

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	stateMenu = iota
	stateRun
)

// App is the interactive visualizer: an algorithm menu and a run screen
// that animates one driver.
type App struct {
	registry *experiment.Registry
	cfg      config.Config
	rng      *rand.Rand

	state, cursor int
	algorithms    []string
	width, height int

	drv         *driver.Driver
	grid        *Grid
	preview     sorting.Array
	comparisons *metrics.Comparisons
	moves       *metrics.Moves
	history     []float64
	ready       bool
	err         error
}

// NewApp builds the app from a validated config. The menu cursor starts on
// the configured algorithm.
func NewApp(cfg *config.Config, registry *experiment.Registry, logger *log.Logger) *App {
	m := &App{
		registry:    registry,
		cfg:         *cfg,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		algorithms:  registry.ListAlgorithms(),
		width:       80,
		height:      24,
		grid:        NewGrid(GetTheme(cfg.Theme), cfg.Rows),
		comparisons: metrics.NewComparisons(),
		moves:       metrics.NewMoves(),
		history:     make([]float64, 0, historyCapacity),
	}
	registry.MaxAttempts = cfg.MaxAttempts
	for i, name := range m.algorithms {
		if name == cfg.Algorithm {
			m.cursor = i
		}
	}

	opts := []driver.Option{
		driver.WithRenderer(driver.RendererFunc(m.record)),
		driver.WithMetrics(m.comparisons, m.moves),
		driver.WithCadence(driver.CadenceFromDelay(cfg.Delay())),
		driver.WithLimits(driver.Limits{MinLength: config.MinSize, MaxLength: config.MaxSize}),
	}
	if logger != nil {
		opts = append(opts, driver.WithLogger(logger))
	}
	m.drv = driver.New(registry, opts...)
	return m
}

func (m *App) Init() tea.Cmd { return nil }

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.state == stateMenu {
			return m, m.menuKey(msg)
		}
		return m, m.runKey(msg)
	case tickMsg:
		return m, m.tick(msg)
	}
	return m, nil
}

func (m *App) menuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.algorithms)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg.Algorithm = m.algorithms[m.cursor]
		m.state = stateRun
		m.err = nil
		m.regenerate()
	}
	return nil
}

func (m *App) View() string {
	if m.state == stateRun {
		return m.viewRun()
	}
	return m.viewMenu()
}

func (m *App) viewMenu() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(m.grid.Theme.Primary).Bold(true)
	b.WriteString("\n\n    " + h.Render("SORTVIZ") + "\n    " + Subtle.Render("sorting algorithm visualizer") + "\n    " + Subtle.Render("─────────────────────────") + "\n\n")

	selected := lipgloss.NewStyle().Foreground(m.grid.Theme.Text).Bold(true)
	marker := lipgloss.NewStyle().Foreground(m.grid.Theme.Primary).Bold(true)
	desc := lipgloss.NewStyle().Foreground(m.grid.Theme.HighlightJ)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimmer := lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	for i, name := range m.algorithms {
		info := m.registry.Describe(name)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", marker.Render("▸"), selected.Render(fmt.Sprintf("%-12s", name)), desc.Render(info)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dim.Render(fmt.Sprintf("  %-12s", name)), dimmer.Render(info)))
		}
	}
	b.WriteString("\n    " + keyHelp("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

// RunInteractive runs the app on the alternate screen until the user quits.
func RunInteractive(cfg *config.Config, registry *experiment.Registry, logger *log.Logger) error {
	_, err := tea.NewProgram(NewApp(cfg, registry, logger), tea.WithAltScreen()).Run()
	return err
}
