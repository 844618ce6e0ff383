package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/analysis"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	verbose     bool
	configFile  string
	preset      string
	size        int
	rows        int
	delay       int
	seed        int64
	pattern     string
	maxAttempts int
	theme       string
	// Headless progress resolution
	samples int
	// Benchmark sizes
	sizes   []int
	workers int
	// Machine readable output
	jsonOut bool
	csvOut  string
	// Watch output
	color bool
	// Snapshot options
	at          int
	out         string
	progressOut string
	force       bool
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue, asciigraph.Red, asciigraph.Green, asciigraph.Yellow,
	asciigraph.Magenta, asciigraph.Cyan, asciigraph.White,
}

// main registers commands and flags, launches the interactive visualizer
// when no subcommand is given, and exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "step-by-step sorting algorithm visualizer",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: runInteractive,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	addConfigFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort one array headless and report statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSort,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().IntVar(&samples, "samples", 60, "sortedness samples to plot")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")

	watchCmd := &cobra.Command{
		Use:   "watch [algorithm]",
		Short: "animate one run in the terminal without the interactive app",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchSort,
	}
	addConfigFlags(watchCmd)
	watchCmd.Flags().BoolVar(&color, "color", true, "color the columns with the theme")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "run several algorithms on the same array",
		RunE:  compareAlgorithms,
	}
	addConfigFlags(compareCmd)
	compareCmd.Flags().IntVar(&samples, "samples", 60, "sortedness samples to plot")
	compareCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (0 for one per CPU)")
	compareCmd.Flags().BoolVar(&jsonOut, "json", false, "print the results as JSON")
	compareCmd.Flags().StringVar(&csvOut, "csv", "", "write the sortedness curves as CSV")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "measure step growth over array sizes",
		RunE:  benchAlgorithms,
	}
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", []int{16, 32, 64, 128, 256}, "array sizes")
	benchCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	benchCmd.Flags().StringVar(&pattern, "pattern", config.PatternRandom, "input pattern")
	benchCmd.Flags().IntVar(&maxAttempts, "max-attempts", sorting.DefaultMaxAttempts, "bogo sort shuffle ceiling")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (0 for one per CPU)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [algorithm]",
		Short: "write a frame of a run as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshotRun,
	}
	addConfigFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&at, "at", 0, "steps to run before the snapshot (0 runs to completion)")
	snapshotCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <algorithm>.svg)")
	snapshotCmd.Flags().StringVar(&progressOut, "progress-out", "", "also write the sortedness curve as SVG")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALGORITHM\tSIZE\tDELAY\tPATTERN\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", name, p.Algorithm, p.Size, delayString(p), p.Pattern, p.Theme)
			}
			return w.Flush()
		},
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := experiment.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, name := range registry.ListAlgorithms() {
				fmt.Fprintf(w, "%s\t%s\n", name, registry.Describe(name))
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file with the defaults or a preset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, watchCmd, compareCmd, benchCmd, snapshotCmd, presetsCmd, algorithmsCmd, configCmd)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVarP(&size, "size", "n", config.DefaultSize, "array length")
	cmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "largest value and grid height")
	cmd.Flags().IntVarP(&delay, "delay", "d", config.DefaultDelayMs, "tick delay in ms (0 for fast mode)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&pattern, "pattern", config.DefaultPattern, "input pattern ("+strings.Join(config.Patterns(), ", ")+")")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", sorting.DefaultMaxAttempts, "bogo sort shuffle ceiling")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order. The first positional argument names the algorithm.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("delay") {
		cfg.DelayMs = delay
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = maxAttempts
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func delayString(cfg *config.Config) string {
	if cfg.DelayMs == 0 {
		return "fast"
	}
	return fmt.Sprintf("%dms", cfg.DelayMs)
}

func newRegistry(cfg *config.Config) *experiment.Registry {
	registry := experiment.NewRegistry()
	registry.Seed = cfg.Seed
	if cfg.MaxAttempts > 0 {
		registry.MaxAttempts = cfg.MaxAttempts
	}
	return registry
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	return viz.RunInteractive(cfg, newRegistry(cfg), loggerFromContext(cmd.Context()))
}

func runExperiment(ctx context.Context, registry *experiment.Registry, cfg *config.Config, algorithm string, input sorting.Array, samples int) (*experiment.Result, error) {
	exp := experiment.New(experiment.Config{
		Algorithm:   algorithm,
		Input:       input,
		Seed:        cfg.Seed,
		MaxAttempts: cfg.MaxAttempts,
		Samples:     samples,
	}, registry)
	exp.SetLogger(loggerFromContext(ctx))
	if err := exp.Setup(registry.DefaultMetrics()); err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	registry := newRegistry(cfg)
	input := cfg.InitialArray(rand.New(rand.NewSource(cfg.Seed)))

	p := newProgress(loggerFromContext(cmd.Context()))
	result, err := runExperiment(cmd.Context(), registry, cfg, cfg.Algorithm, input, samples)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Sorted %d values with %s", len(input), cfg.Algorithm))

	if jsonOut {
		return export.WriteJSON(os.Stdout, []*experiment.Result{result})
	}

	fmt.Printf("input:  %v\noutput: %v\n\n", result.Input, result.Output)
	printResults(os.Stdout, []*experiment.Result{result})

	if len(result.Progress) >= 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(result.Progress,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Precision(2),
			asciigraph.Caption("sortedness over the run")))
	}
	return nil
}

func printResults(w io.Writer, results []*experiment.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSIZE\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES\tINVERSIONS\tSORTED\tTIME")
	for _, r := range results {
		sorted := "yes"
		if !r.Output.IsSorted() {
			sorted = "no"
		}
		if r.Capped {
			sorted += " (capped)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.0f\t%.0f\t%.0f\t%d\t%s\t%s\n",
			r.Algorithm, len(r.Input), r.Steps,
			r.Metrics["comparisons"], r.Metrics["swaps"], r.Metrics["writes"],
			analysis.Inversions(r.Input), sorted, r.Elapsed)
	}
	tw.Flush()
}

func watchSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	var grid *viz.Grid
	if color {
		grid = viz.NewGrid(viz.GetTheme(cfg.Theme), cfg.Rows)
		grid.Gap = cfg.Size <= 60
	}
	r := tui.NewLiveRenderer(os.Stdout, cfg.Rows, grid)

	d := driver.New(newRegistry(cfg),
		driver.WithRenderer(r),
		driver.WithListener(r),
		driver.WithCadence(driver.CadenceFromDelay(cfg.Delay())),
		driver.WithLimits(driver.Limits{MinLength: config.MinSize, MaxLength: config.MaxSize}),
		driver.WithLogger(loggerFromContext(cmd.Context())),
	)
	r.Follow(d)
	if err := d.Start(cfg.Algorithm, cfg.InitialArray(rand.New(rand.NewSource(cfg.Seed)))); err != nil {
		return err
	}
	return d.Run(cmd.Context())
}

func writeProgressCSV(path string, results []*experiment.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteProgressCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// defaultLineup is every algorithm except bogo, which rarely finishes on
// arrays worth comparing.
func defaultLineup(registry *experiment.Registry) []string {
	var names []string
	for _, name := range registry.ListAlgorithms() {
		if name != "bogo" {
			names = append(names, name)
		}
	}
	return names
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	registry := newRegistry(cfg)

	algorithms := args
	if len(algorithms) == 0 {
		algorithms = defaultLineup(registry)
	}
	input := cfg.InitialArray(rand.New(rand.NewSource(cfg.Seed)))

	var configs []experiment.Config
	for _, name := range algorithms {
		if !registry.Has(name) {
			return fmt.Errorf("%w: %s (available: %v)", sorting.ErrUnknownAlgorithm, name, registry.ListAlgorithms())
		}
		configs = append(configs, experiment.Config{
			Algorithm:   name,
			Input:       input,
			Seed:        cfg.Seed,
			MaxAttempts: cfg.MaxAttempts,
			Samples:     samples,
		})
	}

	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)
	batch := experiment.NewBatch(workers, configs...)
	batch.SetLogger(logger)
	results, err := batch.Run(cmd.Context())
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Compared %d algorithms on %d values", len(results), len(input)))

	if csvOut != "" {
		if err := writeProgressCSV(csvOut, results); err != nil {
			return err
		}
		logger.Info("wrote progress curves", "path", csvOut)
	}
	if jsonOut {
		return export.WriteJSON(os.Stdout, results)
	}

	fmt.Printf("comparing %d algorithms on %d values (%s, seed %d)\n\n", len(results), len(input), cfg.Pattern, cfg.Seed)
	printResults(os.Stdout, results)

	var series [][]float64
	names := make([]string, 0, len(results))
	for _, r := range results {
		if len(r.Progress) < 2 {
			continue
		}
		series = append(series, r.Progress)
		names = append(names, r.Algorithm)
	}
	if len(series) > 0 {
		fmt.Println()
		fmt.Println(asciigraph.PlotMany(series,
			asciigraph.Height(12),
			asciigraph.Width(60),
			asciigraph.Precision(2),
			asciigraph.SeriesColors(seriesColors[:min(len(series), len(seriesColors))]...),
			asciigraph.Caption("sortedness: "+strings.Join(names, ", "))))
	}
	return nil
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	if len(sizes) < 2 {
		return fmt.Errorf("bench needs at least two sizes, got %v", sizes)
	}
	for _, n := range sizes {
		if n <= 0 || n > experiment.MaxHeadlessLength {
			return fmt.Errorf("%w: size %d not in [1,%d]", sorting.ErrInvalidLength, n, experiment.MaxHeadlessLength)
		}
	}
	check := config.DefaultConfig()
	check.Pattern = pattern
	if err := check.Validate(); err != nil {
		return err
	}
	registry := experiment.NewRegistry()

	algorithms := args
	if len(algorithms) == 0 {
		algorithms = defaultLineup(registry)
	}

	// one job per algorithm and size; every algorithm sees the same inputs
	var configs []experiment.Config
	for _, name := range algorithms {
		if !registry.Has(name) {
			return fmt.Errorf("%w: %s (available: %v)", sorting.ErrUnknownAlgorithm, name, registry.ListAlgorithms())
		}
		rng := rand.New(rand.NewSource(seed))
		for _, n := range sizes {
			configs = append(configs, experiment.Config{
				Algorithm:   name,
				Input:       config.Generate(rng, pattern, n, n),
				Seed:        seed,
				MaxAttempts: maxAttempts,
			})
		}
	}

	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)
	batch := experiment.NewBatch(workers, configs...)
	batch.SetLogger(logger)
	results, err := batch.Run(cmd.Context())
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Ran %d benchmarks", len(results)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "ALGORITHM"
	for _, n := range sizes {
		header += fmt.Sprintf("\tN=%d", n)
	}
	fmt.Fprintln(w, header+"\tEXPONENT\tGROWTH")

	for i, name := range algorithms {
		line := name
		costs := make([]float64, len(sizes))
		for j := range sizes {
			result := results[i*len(sizes)+j]
			costs[j] = float64(result.Steps)
			mark := ""
			if result.Capped {
				mark = "*"
			}
			line += fmt.Sprintf("\t%d%s", result.Steps, mark)
		}

		k, err := analysis.GrowthExponent(sizes, costs)
		if err != nil {
			line += "\t-\t-"
		} else {
			line += fmt.Sprintf("\t%.2f\t%s", k, analysis.Classify(k))
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func snapshotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	progress := experiment.NewProgress(200)
	d := driver.New(newRegistry(cfg),
		driver.WithRenderer(progress),
		driver.WithLimits(driver.Limits{MinLength: config.MinSize, MaxLength: config.MaxSize}),
		driver.WithLogger(loggerFromContext(cmd.Context())),
	)
	if err := d.Start(cfg.Algorithm, cfg.InitialArray(rand.New(rand.NewSource(cfg.Seed)))); err != nil {
		return err
	}
	a, _ := d.Snapshot()
	progress.Start(a)

	for d.State() == driver.Running && (at <= 0 || d.Steps() < at) {
		if err := cmd.Context().Err(); err != nil {
			d.Stop()
			return err
		}
		d.Tick()
	}
	a, hl := d.Snapshot()
	progress.Close(a)

	path := out
	if path == "" {
		path = cfg.Algorithm + ".svg"
	}
	svg := export.ArrayToSVG(a, hl, cfg.Rows, viz.GetTheme(cfg.Theme))
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	logger.Info("wrote frame", "path", path, "algorithm", cfg.Algorithm, "step", d.Steps(), "state", d.State())

	if progressOut != "" {
		curve := export.ProgressToSVG(progress.Samples(), 600, 200, string(viz.GetTheme(cfg.Theme).High))
		if curve == "" {
			return fmt.Errorf("not enough steps for a progress curve")
		}
		if err := os.WriteFile(progressOut, []byte(curve), 0644); err != nil {
			return err
		}
		logger.Info("wrote progress curve", "path", progressOut)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "sortviz.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("wrote config", "path", path)
	return nil
}
