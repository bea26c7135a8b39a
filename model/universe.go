package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

var (
	// ErrInvalidDimensions is returned when a universe is requested with a non-positive width or height
	ErrInvalidDimensions = errors.New("universe dimensions must be positive")
	// ErrNilRandomSource is returned when no random source is supplied at construction
	ErrNilRandomSource = errors.New("random source is nil")
	// ErrOutOfBounds is the panic value (wrapped) for coordinates outside the grid
	ErrOutOfBounds = errors.New("cell coordinate out of bounds")
)

// aliveThreshold is the upper bound (exclusive) of samples that seed an Alive cell
const aliveThreshold = 0.5

// RandomSource supplies uniform values in [0, 1). *math/rand.Rand and
// *math/rand/v2.Rand both satisfy it.
type RandomSource interface {
	Float64() float64
}

// Universe is a toroidal Game of Life grid stored in row-major order.
//
// A Universe is not safe for concurrent use; the owning host loop must
// serialize every call.
type Universe struct {
	width  int
	height int
	cells  []Cell
	pool   *BufferPool
}

// NewUniverse creates a width x height universe, drawing one sample from src per
// cell in row-major order and marking the cell Alive when the sample is below 0.5
func NewUniverse(width, height int, src RandomSource) (*Universe, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewUniverse] failed to create %dx%d universe", width, height)
	}
	if src == nil {
		return nil, errors.Wrap(ErrNilRandomSource, "[NewUniverse] failed to seed universe")
	}

	u := &Universe{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	u.Randomize(src)
	return u, nil
}

// Randomize reassigns every cell from src with the same rule as NewUniverse
func (u *Universe) Randomize(src RandomSource) {
	for i := range u.cells {
		if src.Float64() < aliveThreshold {
			u.cells[i] = Alive
		} else {
			u.cells[i] = Dead
		}
	}
}

// Width returns the number of columns
func (u *Universe) Width() int {
	return u.width
}

// Height returns the number of rows
func (u *Universe) Height() int {
	return u.height
}

// Cells returns the backing cell buffer without copying it.
//
// The slice is a read-only view: callers must not write through it, and it is
// only valid until the next Tick, SetAlive or Clear. Tick swaps in a new buffer
// (and may hand the old one to a BufferPool for reuse), so hosts must call Cells
// again after every mutation.
func (u *Universe) Cells() []Cell {
	return u.cells
}

// Index returns the buffer offset of (row, column). It performs no bounds checking.
func (u *Universe) Index(row, column int) int {
	return row*u.width + column
}

// Cell returns the state at (row, column), panicking when out of range
func (u *Universe) Cell(row, column int) Cell {
	u.mustContain("Cell", row, column)
	return u.cells[u.Index(row, column)]
}

// SetAlive marks the cell at (row, column) Alive, panicking when out of range
func (u *Universe) SetAlive(row, column int) {
	u.mustContain("SetAlive", row, column)
	u.cells[u.Index(row, column)] = Alive
}

// Clear marks every cell Dead
func (u *Universe) Clear() {
	clear(u.cells)
}

// UsePool makes Tick draw its next-generation buffer from p and release the
// replaced buffer back to it. A nil pool restores plain allocation.
func (u *Universe) UsePool(p *BufferPool) {
	u.pool = p
}

// LiveNeighborCount counts the Alive cells among the 8 neighbors of (row, column),
// wrapping around both edges. Each of the 8 offsets is counted on its own, so on
// a grid one cell wide or tall a coinciding position is counted once per offset.
func (u *Universe) LiveNeighborCount(row, column int) uint8 {
	u.mustContain("LiveNeighborCount", row, column)
	return u.liveNeighborCount(row, column)
}

func (u *Universe) liveNeighborCount(row, column int) uint8 {
	north := row - 1
	if row == 0 {
		north = u.height - 1
	}
	south := row + 1
	if row == u.height-1 {
		south = 0
	}
	west := column - 1
	if column == 0 {
		west = u.width - 1
	}
	east := column + 1
	if column == u.width-1 {
		east = 0
	}

	n, s, w := north*u.width, south*u.width, row*u.width
	c := u.cells
	return uint8(c[n+west] + c[n+column] + c[n+east] +
		c[w+west] + c[w+east] +
		c[s+west] + c[s+column] + c[s+east])
}

// Tick advances the universe one generation. Next states are computed from the
// current buffer into a separate one, which then replaces it.
func (u *Universe) Tick() {
	var next []Cell
	if u.pool != nil {
		next = u.pool.Get(len(u.cells))
	} else {
		next = make([]Cell, len(u.cells))
	}

	for row := range u.height {
		for column := range u.width {
			idx := u.Index(row, column)
			if rules.ApplyConwayRules(u.liveNeighborCount(row, column), u.cells[idx].IsAlive()) {
				next[idx] = Alive
			} else {
				next[idx] = Dead
			}
		}
	}

	prev := u.cells
	u.cells = next
	if u.pool != nil {
		u.pool.Put(prev)
	}
}

// LiveCells returns the total number of Alive cells
func (u *Universe) LiveCells() (count int) {
	for _, c := range u.cells {
		count += int(c)
	}
	return
}

// Hash returns an MD5 digest of the current grid state
func (u *Universe) Hash() string {
	h := md5.New()
	buf := make([]byte, len(u.cells))
	for i, c := range u.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (u *Universe) contains(row, column int) bool {
	return row >= 0 && row < u.height && column >= 0 && column < u.width
}

func (u *Universe) mustContain(op string, row, column int) {
	if !u.contains(row, column) {
		panic(errors.Wrapf(ErrOutOfBounds, "[%s] cell (%d,%d) outside %dx%d universe", op, row, column, u.width, u.height))
	}
}
