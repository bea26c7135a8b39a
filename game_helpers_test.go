package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width = 12
	config.Height = 8
	config.FrameRate = time.Millisecond
	config.MaxGenerations = 5
	config.Seed = 7
	config.Colorize = false
	return config
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	config.StagnationThreshold = 5
	config.RestartEvery = 200

	for _, tc := range []struct {
		name                    string
		living, stagnant, since int
		restart                 bool
		reason                  string
	}{
		{"extinct", 0, 0, 10, true, "extinction"},
		{"stagnant", 10, 5, 10, true, "stagnation detected"},
		{"periodic", 10, 0, 200, true, "periodic refresh"},
		{"fresh start", 10, 0, 0, false, ""},
		{"active", 10, 4, 199, false, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			restart, reason := checkRestartConditions(tc.living, tc.stagnant, tc.since, config)
			if restart != tc.restart || reason != tc.reason {
				t.Fatalf("got (%v, %q), expected (%v, %q)", restart, reason, tc.restart, tc.reason)
			}
		})
	}

	config.StagnationThreshold = 0
	config.RestartEvery = 0
	if restart, _ := checkRestartConditions(10, 100, 400, config); restart {
		t.Fatalf("disabled thresholds still triggered a restart")
	}
}

func TestCliOptionsApply(t *testing.T) {
	base := utils.DefaultConfig()
	if got := (cliOptions{}).apply(base); got != base {
		t.Fatalf("empty options changed the config: %+v", got)
	}

	got := cliOptions{
		width:    9,
		height:   3,
		interval: time.Second,
		maxSteps: 12,
		mode:     utils.ModeInteractive,
		pattern:  model.Glider.Name,
		seed:     99,
		scale:    2,
		noColor:  true,
		noPool:   true,
	}.apply(base)
	if got.Width != 9 || got.Height != 3 || got.FrameRate != time.Second || got.MaxGenerations != 12 {
		t.Fatalf("numeric overrides not applied: %+v", got)
	}
	if got.Mode != utils.ModeInteractive || got.Pattern != model.Glider.Name || got.Seed != 99 || got.Scale != 2 {
		t.Fatalf("string overrides not applied: %+v", got)
	}
	if got.Colorize || got.UseMemoryPool {
		t.Fatalf("boolean overrides not applied: %+v", got)
	}
}

func TestNewUniverseAppliesPattern(t *testing.T) {
	config := testConfig()
	config.Pattern = model.Block.Name
	u, err := newUniverse(config, utils.NewRandomSource(1), nil)
	if err != nil {
		t.Fatalf("newUniverse: %v", err)
	}
	if u.LiveCells() != 4 {
		t.Fatalf("LiveCells = %d, expected a lone block", u.LiveCells())
	}

	config.Pattern = "unknown"
	if _, err = newUniverse(config, utils.NewRandomSource(1), nil); err == nil {
		t.Fatalf("expected an error for an unknown pattern")
	}
}

func TestGameRunStopsAtMaxGenerations(t *testing.T) {
	var out bytes.Buffer
	g, err := initializeGame(testConfig(), &out)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	if err = g.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if g.generation != 5 {
		t.Fatalf("generation = %d, expected 5", g.generation)
	}
	if !strings.Contains(out.String(), "Reached maximum generations limit (5)") {
		t.Fatalf("missing limit message in output:\n%s", out.String())
	}
}

func TestGameRunHonorsCancellation(t *testing.T) {
	var out bytes.Buffer
	config := testConfig()
	config.MaxGenerations = 0
	g, err := initializeGame(config, &out)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err = g.run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if g.generation != 0 {
		t.Fatalf("generation = %d, expected no frames after cancellation", g.generation)
	}
}

func TestGameRestartsOnExtinction(t *testing.T) {
	var out bytes.Buffer
	config := testConfig()
	config.Pattern = model.Blinker.Name
	g, err := initializeGame(config, &out)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	g.universe.Clear()

	if _, err = g.frame(time.Now()); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if g.stats.Restarts != 1 {
		t.Fatalf("Restarts = %d, expected 1", g.stats.Restarts)
	}
	if !strings.Contains(out.String(), "Restarting due to extinction") {
		t.Fatalf("missing restart message in output:\n%s", out.String())
	}
}
