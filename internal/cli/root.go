// Package cli wires the life command line.
package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lifegrid/internal/config"
)

var (
	cfgPath        string
	width          int
	height         int
	scale          int
	tps            int
	autoTickMillis int
	seed           int64
	density        float64
	pattern        string
	logLevel       string
)

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Interactive Conway's Game of Life board",
	Long: "life opens a window with a fixed-size Game of Life board.\n" +
		"Edit cells with the mouse or the keyboard cursor, step generations\n" +
		"one at a time, or hold a key to run the simulation continuously.",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	d := config.Default()
	flags := rootCmd.Flags()
	flags.StringVar(&cfgPath, "config", "", "YAML config file")
	flags.IntVar(&width, "width", d.Width, "board width in cells")
	flags.IntVar(&height, "height", d.Height, "board height in cells")
	flags.IntVar(&scale, "scale", d.Scale, "pixels per cell")
	flags.IntVar(&tps, "tps", d.TPS, "frame ticks per second")
	flags.IntVar(&autoTickMillis, "auto-tick-ms", d.AutoTickMillis, "milliseconds between generations while running")
	flags.Int64Var(&seed, "seed", d.Seed, "seed for --density fills")
	flags.Float64Var(&density, "density", d.Density, "initial live-cell density in [0,1]")
	flags.StringVar(&pattern, "pattern", d.Pattern, "seed pattern to stamp (blinker, block, glider)")
	flags.StringVar(&logLevel, "log-level", d.LogLevel, "log verbosity")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(&cfg, cmd)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	logrus.SetLevel(level)

	if err := cfg.Validate(); err != nil {
		return err
	}
	return launch(cfg)
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cfg *config.Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("tps") {
		cfg.TPS = tps
	}
	if flags.Changed("auto-tick-ms") {
		cfg.AutoTickMillis = autoTickMillis
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
