package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

// frame is one rendered generation handed from the simulation to the display.
type frame struct {
	generation int
	status     string
	board      string
}

// game owns the simulation loop. Only the simulate goroutine touches the grid.
type game struct {
	config   utils.Config
	logger   *slog.Logger
	random   model.RandomSource
	glyphs   model.Glyphs
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	tracker  *utils.StagnationTracker
}

func newGame(config utils.Config, logger *slog.Logger, out io.Writer) *game {
	random := model.SystemRandom
	if config.Seed != 0 {
		random = model.NewRandomSource(config.Seed)
	}
	alive, _ := utf8.DecodeRuneInString(config.AliveGlyph)
	dead, _ := utf8.DecodeRuneInString(config.DeadGlyph)

	return &game{
		config:   config,
		logger:   logger,
		random:   random,
		glyphs:   model.Glyphs{Alive: alive, Dead: dead},
		renderer: &model.TerminalRenderer{Out: out, Logger: logger},
		stats:    utils.NewStats(),
		tracker:  utils.NewStagnationTracker(),
	}
}

// Run simulates and displays generations until the generation limit, a settled
// grid without auto-restart, or cancellation of ctx.
func (g *game) Run(ctx context.Context) error {
	g.logger.Info("Starting simulation",
		"width", g.config.Width,
		"height", g.config.Height,
		"pattern", g.config.Pattern,
		"max_generations", g.config.MaxGenerations,
		"auto_restart", g.config.AutoRestart,
	)

	frames := make(chan frame)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(frames)
		return g.simulate(ctx, frames)
	})
	eg.Go(func() error {
		return g.display(frames)
	})

	err := eg.Wait()
	if errors.Is(err, context.Canceled) {
		g.logger.Info("Shutting down gracefully")
		err = nil
	}
	g.logger.Info("Final stats",
		"generations", g.stats.TotalGenerations,
		"runtime", g.stats.Runtime().Round(time.Millisecond),
		"avg_population", fmt.Sprintf("%.1f", g.stats.AveragePopulation),
		"gen_per_sec", fmt.Sprintf("%.1f", g.stats.GenerationsPerSecond),
	)
	return err
}

func (g *game) simulate(ctx context.Context, frames chan<- frame) error {
	var (
		grid           = g.newGrid(false)
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for generation := 0; ; generation++ {
		living := grid.CountLivingCells()
		g.stats.Update(generation, living, grid.Width()*grid.Height(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		if g.tracker.Observe(grid.Hash()) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		f := frame{
			generation: generation,
			status:     g.status(generation, living, stagnantCount, lastRestartGen),
			board:      grid.RenderGlyphs(g.glyphs),
		}
		select {
		case frames <- f:
		case <-ctx.Done():
			return ctx.Err()
		}

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			g.logger.Info("Reached maximum generations limit", "generation", generation)
			return nil
		}

		if restart, reason := checkRestartConditions(living, stagnantCount, generation-lastRestartGen, g.config); restart {
			if !g.config.AutoRestart {
				g.logger.Info("Simulation settled", "reason", reason, "generation", generation)
				return nil
			}
			g.logger.Info("Restarting", "reason", reason, "generation", generation)
			grid = g.newGrid(true)
			g.tracker.Reset()
			stagnantCount = 0
			lastRestartGen = generation
		} else {
			if stagnantCount >= 2 && g.config.InjectionCount > 0 {
				// Inject some life to try to break the stagnation
				g.logger.Debug("Injecting random life", "count", g.config.InjectionCount, "generation", generation)
				grid.InjectRandomLife(g.random, g.config.InjectionCount)
			}
			grid.Tick()
		}

		if g.config.FrameRate > 0 {
			select {
			case <-time.After(g.config.FrameRate):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (g *game) display(frames <-chan frame) error {
	for f := range frames {
		if g.config.ClearScreen {
			g.renderer.Clear()
		}
		if err := g.renderer.Display(f.status + f.board + "\n"); err != nil {
			return errors.Wrapf(err, "[display] generation %d", f.generation)
		}
	}
	return nil
}

// newGrid builds a fresh grid for the configured starting pattern. Showcase
// grids and every restart get random life scattered on top, so a restart never
// replays the previous run.
func (g *game) newGrid(restart bool) *model.Grid {
	var (
		c    = g.config
		grid *model.Grid
	)
	switch c.Pattern {
	case utils.PatternSeeded:
		grid = model.NewSeededGrid(c.Width, c.Height)
	case utils.PatternRandom:
		grid = model.NewEmptyGrid(c.Width, c.Height)
		grid.Randomize(g.random)
		return grid
	case utils.PatternShowcase:
		grid = showcaseGrid(c.Width, c.Height)
	default:
		grid = model.NewEmptyGrid(c.Width, c.Height)
	}

	if restart || c.Pattern == utils.PatternShowcase {
		grid.Scatter(g.random, c.RandomDensity)
	}
	return grid
}

// showcaseGrid places gliders and blinkers wherever the grid has room for them
func showcaseGrid(width, height int) *model.Grid {
	grid := model.NewEmptyGrid(width, height)
	if width < 10 || height < 10 {
		if width >= model.Blinker.Width() {
			grid.Place(model.Blinker, width/2-1, height/2)
		}
		return grid
	}

	grid.Place(model.Glider, 5, 5)
	if width >= 20 && height >= 15 {
		grid.Place(model.Glider, width-8, 5)
	}

	grid.Place(model.Blinker, width/4, height/4)
	if width >= 30 {
		grid.Place(model.Blinker, 3*width/4, 3*height/4)
		grid.Place(model.Block, width/2, height-4)
	}
	return grid
}

func (g *game) status(generation, living, stagnantCount, lastRestartGen int) string {
	status := "Active"
	if stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", stagnantCount)
	}
	if living == 0 {
		status = "Extinct"
	}

	line := fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, living, g.stats.Density, status)
	if generation > lastRestartGen {
		line += fmt.Sprintf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	return line
}

// checkRestartConditions determines if the game should restart. sinceRestart
// counts generations since the grid was last (re)built.
func checkRestartConditions(livingCells, stagnantCount, sinceRestart int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.RefreshInterval > 0 && sinceRestart >= config.RefreshInterval {
		return true, "periodic refresh"
	}
	return false, ""
}
