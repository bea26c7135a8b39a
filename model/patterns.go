package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned for names with no built-in pattern
var ErrUnknownPattern = errors.New("unknown pattern")

// Seeding modes accepted by Seed besides the built-in pattern names
const (
	PatternRandom      = "random"
	PatternInteresting = "interesting"
)

// Pattern is a named seed shape given as (row, column) offsets from its top-left corner
type Pattern struct {
	Name  string
	Descr string
	Cells [][2]int
}

var (
	Glider = Pattern{
		Name:  "glider",
		Descr: "travels one cell diagonally every four generations",
		Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}
	Blinker = Pattern{
		Name:  "blinker",
		Descr: "period-2 oscillator",
		Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}},
	}
	Block = Pattern{
		Name:  "block",
		Descr: "2x2 still life",
		Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}
	Beacon = Pattern{
		Name:  "beacon",
		Descr: "period-2 oscillator made of two diagonal blocks",
		Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
	}

	patterns = map[string]Pattern{
		Glider.Name:  Glider,
		Blinker.Name: Blinker,
		Block.Name:   Block,
		Beacon.Name:  Beacon,
	}
)

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] no pattern named: %+v", name)
	}
	return p, nil
}

// PatternNames returns the built-in pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the cells of p alive with its top-left corner at (row, column).
// Offsets running past an edge wrap to the opposite side.
func Stamp(u *Universe, p Pattern, row, column int) {
	for _, c := range p.Cells {
		u.SetAlive(wrap(row+c[0], u.height), wrap(column+c[1], u.width))
	}
}

// SeedInteresting clears the universe and adds a mix of gliders and oscillators
func SeedInteresting(u *Universe) {
	u.Clear()

	Stamp(u, Glider, 1, 1)
	if u.width >= 20 && u.height >= 15 {
		Stamp(u, Glider, 1, u.width-8)
	}

	Stamp(u, Blinker, u.height/4, u.width/4)
	if u.width >= 30 {
		Stamp(u, Blinker, 3*u.height/4, 3*u.width/4)
		Stamp(u, Beacon, u.height/2, u.width/2)
	}
}

// Seed resets u according to name: "random" redraws every cell from src,
// "interesting" calls SeedInteresting, and a built-in pattern name clears the
// grid and stamps that pattern in the middle
func Seed(u *Universe, name string, src RandomSource) error {
	switch name {
	case PatternRandom:
		if src == nil {
			return errors.Wrap(ErrNilRandomSource, "[Seed] failed to randomize universe")
		}
		u.Randomize(src)
	case PatternInteresting:
		SeedInteresting(u)
	default:
		p, err := PatternByName(name)
		if err != nil {
			return errors.Wrap(err, "[Seed] failed to seed universe")
		}
		u.Clear()
		Stamp(u, p, u.height/2, u.width/2)
	}
	return nil
}

// SeedNames lists every name Seed accepts
func SeedNames() []string {
	return append([]string{PatternRandom, PatternInteresting}, PatternNames()...)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
