package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game is the headless text host: it owns the universe and drives it frame by frame
type game struct {
	config   utils.Config
	out      io.Writer
	src      model.RandomSource
	universe *model.Universe
	renderer *model.TerminalRenderer
	history  *model.History
	stats    *utils.Stats

	generation     int
	stagnantCount  int
	lastRestartGen int
}

// newUniverse builds a universe for config and seeds it with config.Pattern
func newUniverse(config utils.Config, src model.RandomSource, pool *model.BufferPool) (*model.Universe, error) {
	u, err := model.NewUniverse(config.Width, config.Height, src)
	if err != nil {
		return nil, errors.Wrap(err, "[newUniverse] failed to create universe")
	}
	if config.Pattern != model.PatternRandom {
		if err = model.Seed(u, config.Pattern, src); err != nil {
			return nil, errors.Wrap(err, "[newUniverse] failed to seed universe")
		}
	}
	u.UsePool(pool)
	return u, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	u, src, err := newHostUniverse(config)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to initialize game")
	}

	return &game{
		config:   config,
		out:      out,
		src:      src,
		universe: u,
		renderer: model.NewTerminalRenderer(out, config.Colorize),
		history:  model.NewHistory(0),
		stats:    utils.NewStats(),
	}, nil
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	fmt.Fprintf(g.out, "Features: Memory Pool: %v | Pattern: %s | Auto restart: %v\n",
		g.config.UseMemoryPool, g.config.Pattern, g.config.AutoRestart)
	fmt.Fprintf(g.out, "Grid: %dx%d (toroidal) | Initial living cells: %d\n",
		g.universe.Width(), g.universe.Height(), g.universe.LiveCells())
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// updateGameState updates stats and stagnation tracking, returning status information
func (g *game) updateGameState(lastFrameTime time.Time) (livingCells int, density float64, status string) {
	livingCells = g.universe.LiveCells()
	density = float64(livingCells) / float64(g.universe.Width()*g.universe.Height()) * 100

	g.stats.Update(g.generation, livingCells, time.Since(lastFrameTime))

	hash := g.universe.Hash()
	isStagnant := g.history.IsStagnant(hash)
	g.history.Record(hash)

	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	status = "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	return livingCells, density, status
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, density float64, status string) {
	g.renderer.Status("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		g.generation, livingCells, density, status)
	g.renderer.Status("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	if g.generation > g.lastRestartGen {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	fmt.Fprintln(g.out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generationsSinceRestart int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.RestartEvery > 0 && generationsSinceRestart > 0 && generationsSinceRestart%config.RestartEvery == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the universe in place and resets stagnation tracking
func (g *game) restartGame(reason string) error {
	fmt.Fprintf(g.out, "🔄 Restarting due to %s...\n", reason)

	// fixed patterns would only stagnate again, so restarts always reseed randomly
	if err := model.Seed(g.universe, model.PatternRandom, g.src); err != nil {
		return errors.Wrap(err, "[restartGame] failed to reseed universe")
	}

	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.stats.Restarts++

	fmt.Fprintf(g.out, "✨ New patterns loaded! Living cells: %d\n", g.universe.LiveCells())
	return nil
}

// frame renders the current generation, handles restarts and advances one tick.
// It reports false once the generation limit is reached.
func (g *game) frame(lastFrameTime time.Time) (bool, error) {
	g.renderer.Clear()
	livingCells, density, status := g.updateGameState(lastFrameTime)
	g.displayGameStatus(livingCells, density, status)
	g.renderer.Display(g.universe)

	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		fmt.Fprintf(g.out, "\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
		return false, nil
	}

	if g.config.AutoRestart {
		if restart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.generation-g.lastRestartGen, g.config); restart {
			if err := g.restartGame(reason); err != nil {
				return false, err
			}
		}
	}

	g.universe.Tick()
	g.generation++
	return true, nil
}

// run drives frames every config.FrameRate until the generation limit or ctx is done
func (g *game) run(ctx context.Context) error {
	g.displayGameInfo()

	ticker := time.NewTicker(max(g.config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	lastFrameTime := time.Now()
	for {
		if ctx.Err() != nil {
			return nil
		}
		frameStart := time.Now()
		more, err := g.frame(lastFrameTime)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		lastFrameTime = frameStart

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// displayFinalStats prints the summary shown on exit
func (g *game) displayFinalStats() {
	fmt.Fprintf(g.out, "Final stats: %d generations in %.1f seconds, %d restarts\n",
		g.generation, g.stats.Runtime().Seconds(), g.stats.Restarts)
	fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
