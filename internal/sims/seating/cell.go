package seating

import "fmt"

// Cell is the state of one grid position.
type Cell uint8

const (
	// Floor never changes and never holds an occupant.
	Floor Cell = iota
	// Empty is a vacant seat.
	Empty
	// Occupied is a taken seat.
	Occupied
)

// parseCell maps an input byte to its cell.
func parseCell(b byte) (Cell, bool) {
	switch b {
	case '.':
		return Floor, true
	case 'L':
		return Empty, true
	case '#':
		return Occupied, true
	}
	return Floor, false
}

// Byte returns the input character of the cell.
func (c Cell) Byte() byte {
	switch c {
	case Empty:
		return 'L'
	case Occupied:
		return '#'
	}
	return '.'
}

func (c Cell) String() string {
	switch c {
	case Floor:
		return "floor"
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}
