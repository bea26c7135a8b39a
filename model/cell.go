package model

// Cell is the state of one grid position. Its numeric value is 0 for Dead and
// 1 for Alive so neighbor states can be summed directly.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
