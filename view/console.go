package view

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	headerView   = "header"
	statusView   = "status"
	universeView = "universe"
	helpView     = "help"

	leftColumnWidth = 28
	minWindowHeight = 12
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console is the interactive terminal host. Key handlers and the run loop
// goroutine share the universe, so every access goes through mu.
type Console struct {
	mu         sync.Mutex
	u          *model.Universe
	src        model.RandomSource
	config     utils.Config
	running    bool
	generation int

	g    *gocui.Gui
	k    []keyBinding
	quit chan struct{}

	liveFiller string
	deadFiller string
}

// NewConsole creates the terminal UI for u. src is used when the user reseeds.
func NewConsole(u *model.Universe, src model.RandomSource, config utils.Config) (*Console, error) {
	c := newConsole(u, src, config)

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsole] failed to create terminal ui")
	}
	g.Mouse = true
	g.SetManagerFunc(c.layout)
	c.g = g

	if err = c.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}
	return c, nil
}

func newConsole(u *model.Universe, src model.RandomSource, config utils.Config) *Console {
	au := aurora.NewAurora(config.Colorize)
	c := &Console{
		u:          u,
		src:        src,
		config:     config,
		quit:       make(chan struct{}),
		liveFiller: au.Green(string(model.AliveGlyph)).String(),
		deadFiller: au.BrightBlack(string(model.DeadGlyph)).String(),
	}
	c.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'r', "R", "Run/Stop", c.cmdToggleRun, ""},
		{'n', "N", "Next step", c.cmdStep, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'w', "W", "Random", c.cmdRandomize, ""},
		{gocui.MouseLeft, "MOUSE", "Set cell alive", c.cmdMouseClick, universeView},
	}
	return c
}

func (c *Console) initKeyBindings() error {
	for _, kb := range c.k {
		h := kb.handler
		if err := c.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return errors.Wrapf(err, "[initKeyBindings] failed to bind key: %+v", kb.name)
		}
	}
	return nil
}

// Start runs the UI main loop until the user quits
func (c *Console) Start() error {
	defer c.g.Close()
	go c.runLoop()
	defer close(c.quit)

	if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Start] terminal ui failed")
	}
	return nil
}

// runLoop ticks the universe every FrameRate while running
func (c *Console) runLoop() {
	ticker := time.NewTicker(max(c.config.FrameRate, time.Millisecond))
	defer ticker.Stop()
	for {
		select {
		case <-c.quit:
			return
		case <-ticker.C:
			c.mu.Lock()
			running := c.running
			if running {
				c.tick()
			}
			c.mu.Unlock()
			if running {
				c.refresh()
			}
		}
	}
}

// tick advances one generation; mu must be held
func (c *Console) tick() {
	c.u.Tick()
	c.generation++
	if c.config.MaxGenerations > 0 && c.generation >= c.config.MaxGenerations {
		c.running = false
	}
}

func (c *Console) step() {
	c.mu.Lock()
	c.tick()
	c.mu.Unlock()
	c.refresh()
}

func (c *Console) toggleRun() {
	c.mu.Lock()
	c.running = !c.running
	c.mu.Unlock()
	c.refresh()
}

func (c *Console) clear() {
	c.mu.Lock()
	c.u.Clear()
	c.generation = 0
	c.mu.Unlock()
	c.refresh()
}

func (c *Console) randomize() {
	c.mu.Lock()
	c.u.Randomize(c.src)
	c.generation = 0
	c.mu.Unlock()
	c.refresh()
}

// setAlive marks (row, column) alive, ignoring clicks outside the universe
func (c *Console) setAlive(row, column int) {
	c.mu.Lock()
	inside := row >= 0 && row < c.u.Height() && column >= 0 && column < c.u.Width()
	if inside {
		c.u.SetAlive(row, column)
	}
	c.mu.Unlock()
	if inside {
		c.refresh()
	}
}

// refresh schedules a redraw; it is a no-op before the UI exists
func (c *Console) refresh() {
	if c.g == nil {
		return
	}
	c.g.Update(func(g *gocui.Gui) error {
		c.renderUniverse(g)
		c.renderStatus(g)
		return nil
	})
}

// fieldText draws the universe cropped to maxW x maxH characters
func (c *Console) fieldText(maxW, maxH int) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, h := c.u.Width(), c.u.Height()
	crop := w > maxW || h > maxH
	cells := c.u.Cells()

	var b bytes.Buffer
	for row := 0; row < h && row < maxH; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		if crop && row == maxH-1 {
			b.WriteString(aurora.Red("The universe is larger than the viewing area").String())
			break
		}
		for column := 0; column < w && column < maxW; column++ {
			if cells[c.u.Index(row, column)] == model.Alive {
				b.WriteString(c.liveFiller)
			} else {
				b.WriteString(c.deadFiller)
			}
		}
	}
	return b.String()
}

func (c *Console) renderUniverse(g *gocui.Gui) {
	v, err := g.View(universeView)
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	fmt.Fprint(v, c.fieldText(maxW, maxH))
}

func (c *Console) renderStatus(g *gocui.Gui) {
	v, err := g.View(statusView)
	if err != nil {
		return
	}
	c.mu.Lock()
	mode := aurora.Colorize("paused", aurora.BlueFg).String()
	if c.running {
		mode = aurora.Colorize("running", aurora.CyanFg).String()
	}
	lines := []string{
		renderProp("Dimension", "%v x %v", c.u.Width(), c.u.Height()),
		renderProp("Interval", "%v", c.config.FrameRate),
		renderProp("Generation", "%v", c.generation),
		renderProp("Live cells", "%v", c.u.LiveCells()),
		renderProp("Mode", "%v", mode),
	}
	c.mu.Unlock()

	v.Clear()
	fmt.Fprintln(v, strings.Join(lines, "\n"))
}

func renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight || maxX <= leftColumnWidth+2 {
		if err := headerLayout(g, maxY, "Terminal too small"); err != nil {
			return err
		}
		_ = g.DeleteView(statusView)
		_ = g.DeleteView(universeView)
		_ = g.DeleteView(helpView)
		return nil
	}
	if err := headerLayout(g, 2, "Conway's Game of Life"); err != nil {
		return err
	}

	if v, err := g.SetView(statusView, 0, 2, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	c.renderStatus(g)

	if v, err := g.SetView(universeView, leftColumnWidth+1, 2, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Universe"
	}
	c.renderUniverse(g)

	if v, err := g.SetView(helpView, -1, maxY-4, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, k := range c.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		fmt.Fprintln(v, b.String())
	}
	return nil
}

func headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView(headerView, -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := max((maxX-len(text))/2, 0)
	fmt.Fprintln(v, strings.Repeat(" ", pad)+text)
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdToggleRun(_ *gocui.View) error {
	c.toggleRun()
	return nil
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.step()
	return nil
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.clear()
	return nil
}

func (c *Console) cmdRandomize(_ *gocui.View) error {
	c.randomize()
	return nil
}

func (c *Console) cmdMouseClick(v *gocui.View) error {
	column, row := v.Cursor()
	c.setAlive(row, column)
	return nil
}
