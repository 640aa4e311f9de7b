package tiles

import (
	"fmt"

	"settle/internal/core"
)

// Address is the packed form of a Coord: (x+128)<<8 | (y+128).
type Address uint16

const (
	bias = 128
	// addressSpace is the number of distinct addresses.
	addressSpace = 1 << 16
)

// Coord is an axial hex coordinate. Every step moves by doubled deltas, so
// X and Y stay integral for half-column offsets.
type Coord struct {
	X, Y int
}

// Origin is the reference tile every line starts from.
var Origin = Coord{}

// Step returns the coordinate one tile away in direction d.
func (c Coord) Step(d Direction) Coord {
	delta := d.Delta()
	return Coord{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Walk follows dirs from c.
func (c Coord) Walk(dirs []Direction) Coord {
	for _, d := range dirs {
		c = c.Step(d)
	}
	return c
}

// Neighbors returns the six adjacent coordinates in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = c.Step(d)
	}
	return out
}

// Address packs the coordinate. Both components must lie in [-128, 127].
func (c Coord) Address() (Address, error) {
	if c.X < -bias || c.X >= bias || c.Y < -bias || c.Y >= bias {
		return 0, fmt.Errorf("%w: %v", core.ErrOutOfRange, c)
	}
	return Address(c.X+bias)<<8 | Address(c.Y+bias), nil
}

// FromAddress unpacks an address.
func FromAddress(a Address) Coord {
	return Coord{X: int(a>>8) - bias, Y: int(a&0xFF) - bias}
}

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }
