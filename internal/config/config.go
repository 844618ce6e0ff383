package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSize      = 30
	DefaultRows      = 30
	DefaultDelayMs   = 100
	DefaultPattern   = PatternRandom
	DefaultTheme     = "default"

	MinSize = 5
	MaxSize = 100
	MinRows = 2
	MaxRows = 60
)

// Input patterns for the initial array.
const (
	PatternRandom       = "random"
	PatternSorted       = "sorted"
	PatternReversed     = "reversed"
	PatternNearlySorted = "nearly_sorted"
	PatternFewUnique    = "few_unique"
)

var patterns = []string{PatternRandom, PatternSorted, PatternReversed, PatternNearlySorted, PatternFewUnique}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm   string `yaml:"algorithm" toml:"algorithm"`
	Size        int    `yaml:"size" toml:"size"`
	Rows        int    `yaml:"rows" toml:"rows"`
	DelayMs     int    `yaml:"delay" toml:"delay"`
	Seed        int64  `yaml:"seed" toml:"seed"`
	Pattern     string `yaml:"pattern" toml:"pattern"`
	MaxAttempts int    `yaml:"max_attempts" toml:"max_attempts"`
	Theme       string `yaml:"theme" toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:   DefaultAlgorithm,
		Size:        DefaultSize,
		Rows:        DefaultRows,
		DelayMs:     DefaultDelayMs,
		Seed:        1,
		Pattern:     DefaultPattern,
		MaxAttempts: sorting.DefaultMaxAttempts,
		Theme:       DefaultTheme,
	}
}

// Load reads a config file over the defaults. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Algorithm == "":
		return fmt.Errorf("%w: algorithm is empty", ErrInvalidConfig)
	case c.Size < MinSize || c.Size > MaxSize:
		return fmt.Errorf("%w: size %d not in [%d,%d]", ErrInvalidConfig, c.Size, MinSize, MaxSize)
	case c.Rows < MinRows || c.Rows > MaxRows:
		return fmt.Errorf("%w: rows %d not in [%d,%d]", ErrInvalidConfig, c.Rows, MinRows, MaxRows)
	case c.DelayMs < 0:
		return fmt.Errorf("%w: negative delay %d", ErrInvalidConfig, c.DelayMs)
	case c.MaxAttempts < 0:
		return fmt.Errorf("%w: negative max_attempts %d", ErrInvalidConfig, c.MaxAttempts)
	case !validPattern(c.Pattern):
		return fmt.Errorf("%w: unknown pattern %q (want one of %s)", ErrInvalidConfig, c.Pattern, strings.Join(patterns, ", "))
	}
	return nil
}

func validPattern(p string) bool {
	for _, q := range patterns {
		if p == q {
			return true
		}
	}
	return false
}

func Patterns() []string {
	return append([]string(nil), patterns...)
}

// Delay is the configured tick delay; zero selects fast mode.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// ClampSize keeps a requested size inside [MinSize, MaxSize].
func ClampSize(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n > MaxSize {
		return MaxSize
	}
	return n
}

// InitialArray draws Size values in 1..Rows shaped by Pattern.
func (c *Config) InitialArray(rng *rand.Rand) sorting.Array {
	return Generate(rng, c.Pattern, c.Size, c.Rows)
}

// Generate draws n values in 1..rows with repetition, then shapes them.
func Generate(rng *rand.Rand, pattern string, n, rows int) sorting.Array {
	a := make(sorting.Array, n)
	if pattern == PatternFewUnique {
		levels := []int{1, rows / 3, 2 * rows / 3, rows}
		for i := range a {
			a[i] = max(1, levels[rng.Intn(len(levels))])
		}
		return a
	}

	for i := range a {
		a[i] = 1 + rng.Intn(rows)
	}
	switch pattern {
	case PatternSorted:
		sort.Ints(a)
	case PatternReversed:
		sort.Sort(sort.Reverse(sort.IntSlice(a)))
	case PatternNearlySorted:
		sort.Ints(a)
		for k := 0; k < n/10+1 && n > 1; k++ {
			i, j := rng.Intn(n), rng.Intn(n)
			a[i], a[j] = a[j], a[i]
		}
	}
	return a
}
