package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

const defaultConfigFile = "config.json"

// cliOptions holds flag values; zero values leave the loaded config untouched
type cliOptions struct {
	configFile string
	width      int
	height     int
	interval   time.Duration
	maxSteps   int
	mode       string
	pattern    string
	seed       int64
	scale      int
	noColor    bool
	noPool     bool
}

func parseFlags() cliOptions {
	opts := cliOptions{configFile: defaultConfigFile}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&opts.configFile, "c", "config", "JSON configuration file")
	flaggy.Int(&opts.width, "x", "width", "Width of the universe")
	flaggy.Int(&opts.height, "y", "height", "Height of the universe")
	flaggy.Duration(&opts.interval, "i", "interval", "Interval between generations, for example 150ms")
	flaggy.Int(&opts.maxSteps, "s", "maxSteps", "Stop after this many generations (text mode)")
	flaggy.String(&opts.mode, "m", "mode", "Host to run ["+strings.Join([]string{utils.ModeText, utils.ModeInteractive, utils.ModeCanvas}, "|")+"]")
	flaggy.String(&opts.pattern, "p", "pattern", "Initial pattern ["+strings.Join(model.SeedNames(), "|")+"]")
	flaggy.Int64(&opts.seed, "", "seed", "Random seed, 0 seeds from the clock")
	flaggy.Int(&opts.scale, "", "scale", "Pixels per cell (canvas mode)")
	flaggy.Bool(&opts.noColor, "", "no-color", "Disable colored output")
	flaggy.Bool(&opts.noPool, "", "no-pool", "Allocate a fresh buffer every generation")

	flaggy.Parse()
	return opts
}

// apply overrides config with every flag that was given
func (o cliOptions) apply(config utils.Config) utils.Config {
	if o.width != 0 {
		config.Width = o.width
	}
	if o.height != 0 {
		config.Height = o.height
	}
	if o.interval != 0 {
		config.FrameRate = o.interval
	}
	if o.maxSteps != 0 {
		config.MaxGenerations = o.maxSteps
	}
	if o.mode != "" {
		config.Mode = o.mode
	}
	if o.pattern != "" {
		config.Pattern = o.pattern
	}
	if o.seed != 0 {
		config.Seed = o.seed
	}
	if o.scale != 0 {
		config.Scale = o.scale
	}
	if o.noColor {
		config.Colorize = false
	}
	if o.noPool {
		config.UseMemoryPool = false
	}
	return config
}

func main() {
	opts := parseFlags()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(opts.configFile)
	if err != nil {
		if opts.configFile != defaultConfigFile || !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("config: %+v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", defaultConfigFile)
		config = utils.DefaultConfig()
	}
	config = opts.apply(config)
	if err = config.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	switch config.Mode {
	case utils.ModeInteractive:
		err = runInteractive(config)
	case utils.ModeCanvas:
		err = runCanvas(config)
	default:
		err = runText(config)
	}
	if err != nil {
		log.Fatalf("%s: %+v", config.Mode, err)
	}
}

// runText runs the headless host until the generation limit or Ctrl+C
func runText(config utils.Config) error {
	g, err := initializeGame(config, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	eg.Go(func() error {
		defer close(done)
		return g.run(ctx)
	})
	eg.Go(func() error {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
		case <-done:
		}
		return nil
	})
	if err = eg.Wait(); err != nil {
		return err
	}

	g.displayFinalStats()
	return nil
}

// newHostUniverse builds the universe and random source shared by every host
func newHostUniverse(config utils.Config) (*model.Universe, model.RandomSource, error) {
	src := utils.NewRandomSource(config.Seed)
	var pool *model.BufferPool
	if config.UseMemoryPool {
		pool = model.NewBufferPool()
	}
	u, err := newUniverse(config, src, pool)
	if err != nil {
		return nil, nil, err
	}
	return u, src, nil
}

func runInteractive(config utils.Config) error {
	u, src, err := newHostUniverse(config)
	if err != nil {
		return err
	}

	console, err := view.NewConsole(u, src, config)
	if err != nil {
		return err
	}
	return console.Start()
}

func runCanvas(config utils.Config) error {
	u, src, err := newHostUniverse(config)
	if err != nil {
		return err
	}
	return view.RunCanvas(u, src, config)
}
