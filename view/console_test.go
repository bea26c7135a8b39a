package view

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func newTestConsole(t *testing.T, width, height int) *Console {
	t.Helper()
	u, err := model.NewUniverse(width, height, constSource(0.9))
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	config := utils.DefaultConfig()
	config.Colorize = false
	return newConsole(u, constSource(0.1), config)
}

func TestConsoleCommands(t *testing.T) {
	c := newTestConsole(t, 5, 5)

	c.setAlive(2, 1)
	c.setAlive(2, 2)
	c.setAlive(2, 3)
	c.setAlive(9, 9)
	if c.u.LiveCells() != 3 {
		t.Fatalf("LiveCells = %d, expected 3", c.u.LiveCells())
	}

	c.step()
	if c.generation != 1 || c.u.Cell(1, 2) != model.Alive {
		t.Fatalf("step did not advance the blinker\n%s", c.u.Render())
	}

	c.toggleRun()
	if !c.running {
		t.Fatalf("toggleRun did not start running")
	}
	c.toggleRun()
	if c.running {
		t.Fatalf("toggleRun did not stop running")
	}

	c.randomize()
	if c.u.LiveCells() != 25 || c.generation != 0 {
		t.Fatalf("randomize: live=%d generation=%d", c.u.LiveCells(), c.generation)
	}

	c.clear()
	if c.u.LiveCells() != 0 {
		t.Fatalf("clear left %d live cells", c.u.LiveCells())
	}
}

func TestConsoleStopsAtMaxGenerations(t *testing.T) {
	c := newTestConsole(t, 4, 4)
	c.config.MaxGenerations = 2
	c.running = true
	c.tick()
	if !c.running {
		t.Fatalf("stopped too early")
	}
	c.tick()
	if c.running {
		t.Fatalf("still running after the generation limit")
	}
}

func TestConsoleFieldText(t *testing.T) {
	c := newTestConsole(t, 4, 3)
	c.setAlive(0, 0)

	lines := strings.Split(c.fieldText(80, 40), "\n")
	if len(lines) != 3 {
		t.Fatalf("field has %d lines, expected 3", len(lines))
	}
	if lines[0] != "◼◻◻◻" {
		t.Fatalf("first line = %q", lines[0])
	}

	cropped := strings.Split(c.fieldText(2, 2), "\n")
	if len(cropped) != 2 || utf8.RuneCountInString(cropped[0]) != 2 {
		t.Fatalf("cropped field = %q", cropped)
	}
	if !strings.Contains(cropped[1], "larger than the viewing area") {
		t.Fatalf("cropped field has no warning: %q", cropped[1])
	}
}
