package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Algorithm: "bubble", Size: 30, Rows: 30, DelayMs: 100, Seed: 1,
		Pattern: PatternRandom, Theme: "default",
	},
	"quick-large": {
		Algorithm: "quick", Size: 100, Rows: 60, DelayMs: 10, Seed: 7,
		Pattern: PatternRandom, Theme: "default",
	},
	"merge-reversed": {
		Algorithm: "merge", Size: 64, Rows: 30, DelayMs: 20, Seed: 3,
		Pattern: PatternReversed, Theme: "ocean",
	},
	"insertion-nearly": {
		Algorithm: "insertion", Size: 50, Rows: 30, DelayMs: 30, Seed: 11,
		Pattern: PatternNearlySorted, Theme: "retro",
	},
	"heap-few": {
		Algorithm: "heap", Size: 60, Rows: 30, DelayMs: 25, Seed: 5,
		Pattern: PatternFewUnique, Theme: "default",
	},
	"bogo-tiny": {
		Algorithm: "bogo", Size: 6, Rows: 10, DelayMs: 5, Seed: 42,
		Pattern: PatternRandom, MaxAttempts: 20000, Theme: "mono",
	},
	"instant": {
		Algorithm: "selection", Size: 100, Rows: 30, DelayMs: 0, Seed: 1,
		Pattern: PatternRandom, Theme: "default",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
