package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	DeadGlyph  = '◻'
	AliveGlyph = '◼'

	// clearScreen moves the cursor home and erases the display
	clearScreen = "\x1b[H\x1b[2J"
)

// Render returns a text snapshot of the universe: one line per row, one glyph
// per cell, each line terminated by a newline
func (u *Universe) Render() string {
	var b strings.Builder
	b.Grow(u.height * (u.width*len(string(AliveGlyph)) + 1))
	for row := range u.height {
		for _, c := range u.cells[row*u.width : (row+1)*u.width] {
			if c == Alive {
				b.WriteRune(AliveGlyph)
			} else {
				b.WriteRune(DeadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer with the same output as Render
func (u *Universe) String() string {
	return u.Render()
}

// TerminalRenderer writes universe frames to a terminal
type TerminalRenderer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewTerminalRenderer returns a renderer writing to out, coloring live cells when colorize is set
func NewTerminalRenderer(out io.Writer, colorize bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, au: aurora.NewAurora(colorize)}
}

// Display renders the universe to the terminal
func (r *TerminalRenderer) Display(u *Universe) {
	var b strings.Builder
	alive := r.au.Green(string(AliveGlyph)).String()
	dead := r.au.BrightBlack(string(DeadGlyph)).String()
	for row := range u.height {
		for _, c := range u.cells[row*u.width : (row+1)*u.width] {
			if c == Alive {
				b.WriteString(alive)
			} else {
				b.WriteString(dead)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.out, b.String())
}

// Status prints a labelled status line
func (r *TerminalRenderer) Status(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.au.Cyan(fmt.Sprintf(format, args...)))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.out, clearScreen)
}
