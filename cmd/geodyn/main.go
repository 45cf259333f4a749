package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/tensorwerk/geodyn/internal/compute"
	"github.com/tensorwerk/geodyn/internal/config"
	"github.com/tensorwerk/geodyn/internal/engine"
	"github.com/tensorwerk/geodyn/internal/geometry"
	"github.com/tensorwerk/geodyn/internal/metrics"
	"github.com/tensorwerk/geodyn/internal/solvers"
	"github.com/tensorwerk/geodyn/internal/storage"
	"github.com/tensorwerk/geodyn/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	backend    string
	ticks      int
	seed       int64
	threshold  float64
	amplitude  float64
	flowScale  float64
	live       bool

	// geodesic flags
	dt         float64
	adaptive   bool
	tolerance  float64
	minDt      float64
	maxDt      float64
	paramRange float64
	velT       float64
	velX       float64
	velY       float64
	velZ       float64

	benchTicks int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geodyn",
		Short: "curvature simulation engine on a 4d pseudo-riemannian manifold",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".geodyn", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the tick loop against a synthetic observation stream",
		RunE:  runTicks,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "preset configuration (calm|turbulent|collapse)")
	runCmd.Flags().StringVar(&backend, "backend", "", "compute backend (scalar|parallel|cuda)")
	runCmd.Flags().IntVar(&ticks, "ticks", 0, "number of ticks (overrides config)")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().Float64Var(&threshold, "threshold", 0, "singularity threshold (overrides config)")
	runCmd.Flags().Float64Var(&amplitude, "amplitude", 0, "density amplitude (overrides config)")
	runCmd.Flags().Float64Var(&flowScale, "flow", 0, "flow scale (overrides config)")
	runCmd.Flags().BoolVar(&live, "live", false, "render a live dashboard instead of saving a run")

	geodesicCmd := &cobra.Command{
		Use:   "geodesic",
		Short: "integrate a geodesic through the current manifold",
		RunE:  runGeodesic,
	}
	geodesicCmd.Flags().Float64Var(&dt, "dt", 0.01, "step size")
	geodesicCmd.Flags().BoolVar(&adaptive, "adaptive", false, "use adaptive stepping")
	geodesicCmd.Flags().Float64Var(&tolerance, "tol", 1e-6, "adaptive error tolerance")
	geodesicCmd.Flags().Float64Var(&minDt, "min-dt", 1e-8, "adaptive minimum step")
	geodesicCmd.Flags().Float64Var(&maxDt, "max-dt", 1.0, "adaptive maximum step")
	geodesicCmd.Flags().Float64Var(&paramRange, "range", 10.0, "parameter range")
	geodesicCmd.Flags().Float64Var(&velT, "vt", 1.0, "initial 4-velocity time component")
	geodesicCmd.Flags().Float64Var(&velX, "vx", 0.0, "initial 4-velocity x component")
	geodesicCmd.Flags().Float64Var(&velY, "vy", 0.0, "initial 4-velocity y component")
	geodesicCmd.Flags().Float64Var(&velZ, "vz", 0.0, "initial 4-velocity z component")
	geodesicCmd.Flags().StringVar(&backend, "backend", "parallel", "compute backend")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the ricci-scalar history of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the tick loop on every backend",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 500, "ticks per backend")
	benchCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	rootCmd.AddCommand(runCmd, geodesicCmd, listCmd, plotCmd, exportCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.DefaultConfig(), nil
}

func buildEngine(cfg *config.Config) (*engine.Engine, compute.Backend, error) {
	name := cfg.Backend
	if backend != "" {
		name = backend
	}
	b, err := compute.ByName(name)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(cfg.GeometryConstants(), b)
	eng.AddMetric(metrics.NewMaxCurvature())
	eng.AddMetric(metrics.NewSingularityCount())
	eng.AddMetric(metrics.NewMeanLatency())
	return eng, b, nil
}

// applyThresholdOverride replaces the configured detection threshold
// when the flag was set explicitly. A plain zero check would make a
// zero threshold impossible to request.
func applyThresholdOverride(cfg *config.Config, set bool) {
	if set {
		cfg.Threshold = threshold
	}
}

func runTicks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if ticks > 0 {
		cfg.Ticks = ticks
	}
	if amplitude > 0 {
		cfg.Source.Amplitude = amplitude
	}
	if flowScale > 0 {
		cfg.Source.FlowScale = flowScale
	}
	applyThresholdOverride(cfg, cmd.Flags().Changed("threshold"))

	eng, b, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer b.Cleanup()

	src := engine.NewSyntheticSource(seed, cfg.Source.Amplitude, cfg.Source.FlowScale)

	if live {
		return tui.Run(eng, src, cfg.Ticks)
	}

	result, err := eng.Run(context.Background(), src, cfg.Ticks)
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(seed, b.Name(), cfg.Threshold, result)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d ticks on %s\n", runID, len(result.Records), b.Name())
	for name, value := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, value)
	}
	return nil
}

func runGeodesic(cmd *cobra.Command, args []string) error {
	b, err := compute.ByName(backend)
	if err != nil {
		return err
	}
	defer b.Cleanup()

	manifold := geometry.New(geometry.DefaultConstants(), b)

	var strategy solvers.Strategy
	if adaptive {
		strategy, err = solvers.NewAdaptiveRK4(dt, tolerance, minDt, maxDt)
	} else {
		strategy, err = solvers.NewFixedRK4(dt)
	}
	if err != nil {
		return err
	}

	solver := solvers.NewGeodesicSolver(manifold, strategy, b)
	path, err := solver.Solve(geometry.Point{}, geometry.Vector4{velT, velX, velY, velZ}, paramRange)
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	name, err := store.SaveGeodesic("", path)
	if err != nil {
		return err
	}

	series := make([]float64, len(path.Samples))
	for i, s := range path.Samples {
		series[i] = s.State[0]
	}
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Caption("coordinate time along the geodesic")))
	fmt.Printf("%d samples over range %.4g -> %s\n", len(path.Samples), path.ParamRange, name)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tTICKS\tBACKEND\tSINGULARITIES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%.0f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Backend,
			run.Metrics["singularities"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	history, err := store.LoadRicciHistory(args[0])
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return fmt.Errorf("run %s has no ticks", args[0])
	}

	fmt.Println(asciigraph.Plot(history, asciigraph.Height(14), asciigraph.Caption("ricci scalar")))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	data, err := store.Export(args[0])
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tTICKS\tELAPSED\tPER TICK")

	for _, name := range []string{"scalar", "parallel", "cuda"} {
		b, err := compute.ByName(name)
		if err != nil {
			return err
		}

		eng := engine.New(geometry.DefaultConstants(), b)
		src := engine.NewSyntheticSource(seed, config.DefaultAmplitude, config.DefaultFlowScale)

		started := time.Now()
		if _, err := eng.Run(context.Background(), src, benchTicks); err != nil {
			b.Cleanup()
			return err
		}
		elapsed := time.Since(started)
		b.Cleanup()

		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", b.Name(), benchTicks, elapsed, elapsed/time.Duration(benchTicks))
	}

	return w.Flush()
}
