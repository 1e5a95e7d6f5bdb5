// orbitplot integrates a body orbiting a fixed attractor and renders its
// trailing trajectory to an image.
//
// Usage:
//
//	orbitplot --step 20000 --G 1 --M 1 --x 1 --y 0 --vx 0 --vy 1.2 --t 0.001 --buf 200 --img-size 1024
//	orbitplot --preset elliptic --preview
//	orbitplot --config orbit.yaml --format svg
//	orbitplot presets
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitplot/internal/config"
	"github.com/san-kum/orbitplot/internal/dynamo"
	"github.com/san-kum/orbitplot/internal/experiment"
	"github.com/san-kum/orbitplot/internal/viz"
)

var (
	flags      config.Config
	configFile string
	preset     string
	format     string
	csvPath    string
	preview    bool
	logLevel   string
)

// numericFlags are required unless a config file or preset supplies them.
var numericFlags = []string{"step", "G", "M", "x", "y", "vx", "vy", "t", "buf", "img-size"}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "orbitplot",
		Short:         "plot the trail of a body orbiting a fixed attractor",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlot,
	}

	f := rootCmd.Flags()
	f.Uint64Var(&flags.Step, "step", 0, "integration step limit")
	f.Float64Var(&flags.G, "G", 0, "gravitational parameter")
	f.Float64Var(&flags.M, "M", 0, "attractor mass")
	f.Float64Var(&flags.X, "x", 0, "initial x position")
	f.Float64Var(&flags.Y, "y", 0, "initial y position")
	f.Float64Var(&flags.VX, "vx", 0, "initial x velocity")
	f.Float64Var(&flags.VY, "vy", 0, "initial y velocity")
	f.Float64Var(&flags.Dt, "t", 0, "time step")
	f.IntVar(&flags.Buf, "buf", 0, "trail buffer length")
	f.Uint32Var(&flags.ImgSize, "img-size", 0, "size of the larger image side in pixels")
	f.BoolVar(&flags.ScaleGM, "scale-gm", false, "scale the attraction by G*M instead of unit strength")
	f.StringVar(&flags.OutDir, "out", "", "output directory (default \"output\")")

	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.StringVar(&format, "format", "png", "image format ("+strings.Join(experiment.NewRegistry().ListFormats(), ", ")+")")
	f.StringVar(&csvPath, "csv", "", "write the trajectory to a csv file")
	f.BoolVar(&preview, "preview", false, "print an ascii chart of the orbital radius")
	rootCmd.MarkFlagsMutuallyExclusive("config", "preset")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-10s step=%d x=(%g, %g) v=(%g, %g) t=%g buf=%d img=%d\n",
					name, p.Step, p.X, p.Y, p.VX, p.VY, p.Dt, p.Buf, p.ImgSize)
			}
		},
	}
	rootCmd.AddCommand(presetsCmd)

	return rootCmd
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", dynamo.ErrInvalidConfig, logLevel)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "orbitplot",
		Level:           level,
	})
	return logger, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	gg.SetLogger(slog.New(logger))

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if ignoresGM(cfg) {
		logger.Warn("G*M does not affect the dynamics without --scale-gm", "G", cfg.G, "M", cfg.M)
	}

	logger.Debug("starting run", "step", cfg.Step, "t", cfg.Dt, "buf", cfg.Buf, "img_size", cfg.ImgSize)

	exp := experiment.New(cfg, experiment.Options{
		Format:  format,
		CSVPath: csvPath,
		Preview: preview,
	})
	res, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	if res.Invalid > 0 {
		logger.Warn("trajectory became non-finite", "invalid_states", res.Invalid)
	}
	if res.CSVRows > 0 {
		logger.Info("wrote trajectory", "path", csvPath, "rows", res.CSVRows)
	}
	logger.Info("wrote image", "path", res.Path)

	fmt.Println(viz.Summary("orbit", summaryMetrics(res)))

	if res.Radius != nil {
		if chart := res.Radius.Plot(80, 12); chart != "" {
			fmt.Println(chart)
		}
	}
	return nil
}

// ignoresGM reports whether G*M differs from the unit strength the field uses
// without --scale-gm.
func ignoresGM(cfg *config.Config) bool {
	return !cfg.ScaleGM && cfg.G*cfg.M != 1
}

func summaryMetrics(res *experiment.Result) []viz.Metric {
	metrics := []viz.Metric{
		viz.Metricf("canvas", "%dx%d px", res.Layout.Width, res.Layout.Height),
		viz.Metricf("x range", "[%.4g, %.4g]", res.Layout.XRange[0], res.Layout.XRange[1]),
		viz.Metricf("y range", "[%.4g, %.4g]", res.Layout.YRange[0], res.Layout.YRange[1]),
		viz.Metricf("final", "%s", res.Stats.Last),
		viz.Metricf("flushes", "%d (%d markers)", res.Stats.Flushes, res.Stats.Markers),
		viz.Metricf("energy", "%.6g -> %.6g", res.EnergyStart, res.EnergyEnd),
		viz.Metricf("energy drift", "%.3e", res.Drift),
	}
	if res.Invalid > 0 {
		metrics = append(metrics, viz.Warnf("non-finite", "%d states", res.Invalid))
	}
	return metrics
}

// resolveConfig layers explicitly set flags over a config file, a preset or,
// when neither is given, nothing at all.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: unknown preset %q (have %s)",
				dynamo.ErrInvalidConfig, preset, strings.Join(config.ListPresets(), ", "))
		}
	default:
		var missing []string
		for _, name := range numericFlags {
			if !cmd.Flags().Changed(name) {
				missing = append(missing, "--"+name)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s", dynamo.ErrMissingParam, strings.Join(missing, ", "))
		}
		cfg = &config.Config{}
	}

	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	set := map[string]func(){
		"step":     func() { cfg.Step = flags.Step },
		"G":        func() { cfg.G = flags.G },
		"M":        func() { cfg.M = flags.M },
		"x":        func() { cfg.X = flags.X },
		"y":        func() { cfg.Y = flags.Y },
		"vx":       func() { cfg.VX = flags.VX },
		"vy":       func() { cfg.VY = flags.VY },
		"t":        func() { cfg.Dt = flags.Dt },
		"buf":      func() { cfg.Buf = flags.Buf },
		"img-size": func() { cfg.ImgSize = flags.ImgSize },
		"scale-gm": func() { cfg.ScaleGM = flags.ScaleGM },
		"out":      func() { cfg.OutDir = flags.OutDir },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}
