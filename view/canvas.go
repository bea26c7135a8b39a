//go:build ebiten

package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Canvas adapts a universe to the ebiten.Game interface. ebiten calls Update
// and Draw from one goroutine, so no locking is needed.
type Canvas struct {
	u      *model.Universe
	src    model.RandomSource
	config utils.Config
	step   *utils.FixedStep

	image  *ebiten.Image
	pixels []byte

	running    bool
	tickOnce   bool
	generation int
}

// NewCanvas constructs a Canvas for u
func NewCanvas(u *model.Universe, src model.RandomSource, config utils.Config) *Canvas {
	cw, ch := canvasSize(u.Width(), u.Height(), config.Scale)
	return &Canvas{
		u:       u,
		src:     src,
		config:  config,
		step:    utils.NewFixedStep(config.FrameRate),
		image:   ebiten.NewImage(cw, ch),
		pixels:  make([]byte, 4*cw*ch),
		running: true,
	}
}

// RunCanvas opens a window for u and blocks until it is closed
func RunCanvas(u *model.Universe, src model.RandomSource, config utils.Config) error {
	c := NewCanvas(u, src, config)
	cw, ch := canvasSize(u.Width(), u.Height(), config.Scale)

	ebiten.SetWindowTitle("go-life")
	ebiten.SetWindowSize(cw, ch)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(c); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[RunCanvas] canvas host failed")
	}
	return nil
}

// Update handles input and advances the simulation
func (c *Canvas) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		c.running = !c.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		c.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		c.u.Clear()
		c.generation = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		c.u.Randomize(c.src)
		c.generation = 0
	}

	// dragging with the left button paints cells alive
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, column, ok := cellAt(x, y, c.config.Scale, c.u.Width(), c.u.Height()); ok {
			c.u.SetAlive(row, column)
		}
	}

	if (c.running && c.step.ShouldStep()) || c.tickOnce {
		c.u.Tick()
		c.generation++
		c.tickOnce = false
		if c.config.MaxGenerations > 0 && c.generation >= c.config.MaxGenerations {
			c.running = false
		}
	}
	return nil
}

// Draw paints the current generation
func (c *Canvas) Draw(screen *ebiten.Image) {
	paintCanvas(c.pixels, c.u.Cells(), c.u.Width(), c.u.Height(), c.config.Scale)
	c.image.WritePixels(c.pixels)
	screen.DrawImage(c.image, nil)
}

// Layout returns the logical screen size
func (c *Canvas) Layout(_, _ int) (int, int) {
	return canvasSize(c.u.Width(), c.u.Height(), c.config.Scale)
}
