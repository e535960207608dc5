package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/utils"
)

const defaultConfigPath = "config.json"

// exitError carries the process exit code for usage errors.
type exitError struct {
	Code    int
	Message string
}

func (e *exitError) Error() string {
	return e.Message
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads configuration and drives the simulation until it finishes or ctx
// is cancelled. Frames go to stdout, logs and usage to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	configPath, overrides, shouldExit, err := parseFlags(args, stderr)
	if err != nil || shouldExit {
		return err
	}

	config, err := utils.LoadConfig(configPath)
	usedDefaults := false
	if err != nil {
		// Load configuration - fallback to defaults if the default file doesn't exist
		if !errors.Is(err, fs.ErrNotExist) || configPath != defaultConfigPath {
			return err
		}
		usedDefaults = true
		config = utils.DefaultConfig()
	}
	if err = utils.ApplyEnv(&config, nil); err != nil {
		return &exitError{Code: 2, Message: err.Error()}
	}
	for _, apply := range overrides {
		apply(&config)
	}
	if err = config.Validate(); err != nil {
		return &exitError{Code: 2, Message: err.Error()}
	}

	logger := utils.NewLogger(config.LogLevel, config.LogFormat, stderr)
	if usedDefaults {
		logger.Info("Using default configuration", "path", configPath)
	}

	return newGame(config, logger, stdout).Run(ctx)
}

// parseFlags returns the config path plus one override per flag the user set,
// so flags win over the config file and the environment.
func parseFlags(args []string, output io.Writer) (string, []func(*utils.Config), bool, error) {
	flagSet := flag.NewFlagSet("go-gol", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
go-gol - Conway's Game of Life on a fixed, non-wrapping grid.

Usage:
  go-gol [options]

Configuration is read from -config, then GOL_* environment variables, then flags.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := utils.DefaultConfig()
	var (
		configPath  = flagSet.String("config", defaultConfigPath, "Path to a JSON config file.")
		width       = flagSet.Int("width", defaults.Width, "Grid width in cells.")
		height      = flagSet.Int("height", defaults.Height, "Grid height in cells.")
		pattern     = flagSet.String("pattern", defaults.Pattern, "Starting pattern: 'empty', 'seeded', 'random' or 'showcase'.")
		seed        = flagSet.Int64("seed", defaults.Seed, "Seed for the random pattern. 0 uses the system generator.")
		generations = flagSet.Int("generations", defaults.MaxGenerations, "Stop after this many generations. 0 runs until interrupted.")
		frameRate   = flagSet.Duration("frame-rate", defaults.FrameRate, "Delay between generations.")
		density     = flagSet.Float64("density", defaults.RandomDensity, "Share of cells brought to life on showcase grids and restarts.")
		refresh     = flagSet.Int("refresh-interval", defaults.RefreshInterval, "Restart after this many generations. 0 disables.")
		autoRestart = flagSet.Bool("auto-restart", defaults.AutoRestart, "Reseed the grid on extinction or stagnation.")
		noClear     = flagSet.Bool("no-clear", false, "Do not clear the terminal between frames.")
		logLevel    = flagSet.String("log-level", defaults.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
		logFormat   = flagSet.String("log-format", defaults.LogFormat, "Log output format: 'text' or 'json'.")
	)

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return "", nil, true, nil
		}
		return "", nil, false, &exitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return "", nil, false, &exitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	var overrides []func(*utils.Config)
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			overrides = append(overrides, func(c *utils.Config) { c.Width = *width })
		case "height":
			overrides = append(overrides, func(c *utils.Config) { c.Height = *height })
		case "pattern":
			overrides = append(overrides, func(c *utils.Config) { c.Pattern = *pattern })
		case "seed":
			overrides = append(overrides, func(c *utils.Config) { c.Seed = *seed })
		case "generations":
			overrides = append(overrides, func(c *utils.Config) { c.MaxGenerations = *generations })
		case "frame-rate":
			overrides = append(overrides, func(c *utils.Config) { c.FrameRate = *frameRate })
		case "density":
			overrides = append(overrides, func(c *utils.Config) { c.RandomDensity = *density })
		case "refresh-interval":
			overrides = append(overrides, func(c *utils.Config) { c.RefreshInterval = *refresh })
		case "auto-restart":
			overrides = append(overrides, func(c *utils.Config) { c.AutoRestart = *autoRestart })
		case "no-clear":
			overrides = append(overrides, func(c *utils.Config) { c.ClearScreen = !*noClear })
		case "log-level":
			overrides = append(overrides, func(c *utils.Config) { c.LogLevel = *logLevel })
		case "log-format":
			overrides = append(overrides, func(c *utils.Config) { c.LogFormat = *logFormat })
		}
	})

	return *configPath, overrides, false, nil
}
