package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the column grid and the panels around it. Filled cells blend
// from Low at the bottom row to High at the top.
type Theme struct {
	Name       string
	Low        lipgloss.Color
	High       lipgloss.Color
	Empty      lipgloss.Color
	HighlightI lipgloss.Color
	HighlightJ lipgloss.Color
	Primary    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:       "default",
		Low:        lipgloss.Color("#2e2e2e"),
		High:       lipgloss.Color("#268bd2"),
		Empty:      lipgloss.Color("#222222"),
		HighlightI: lipgloss.Color("#dc322f"),
		HighlightJ: lipgloss.Color("#b58900"),
		Primary:    lipgloss.Color("#00cccc"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Low:        lipgloss.Color("#001a33"),
		High:       lipgloss.Color("#00a8cc"),
		Empty:      lipgloss.Color("#0a1622"),
		HighlightI: lipgloss.Color("#ffd700"),
		HighlightJ: lipgloss.Color("#ff7f50"),
		Primary:    lipgloss.Color("#0077be"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffcc00"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Low:        lipgloss.Color("#2d1b2e"),
		High:       lipgloss.Color("#ff6b6b"),
		Empty:      lipgloss.Color("#1e1420"),
		HighlightI: lipgloss.Color("#feca57"),
		HighlightJ: lipgloss.Color("#ff9ff3"),
		Primary:    lipgloss.Color("#ff6b6b"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Low:        lipgloss.Color("#003300"),
		High:       lipgloss.Color("#00ff00"),
		Empty:      lipgloss.Color("#001100"),
		HighlightI: lipgloss.Color("#ffff00"),
		HighlightJ: lipgloss.Color("#88ff88"),
		Primary:    lipgloss.Color("#00ff00"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Low:        lipgloss.Color("#444444"),
		High:       lipgloss.Color("#eeeeee"),
		Empty:      lipgloss.Color("#1c1c1c"),
		HighlightI: lipgloss.Color("#0088ff"),
		HighlightJ: lipgloss.Color("#00ccff"),
		Primary:    lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeOcean,
		ThemeSunset,
		ThemeRetro,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDefault
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
