package core

import (
	"fmt"
	"math"
)

// Grid stores a 2D grid of cell values in row-major order. The column count
// is fixed by the first appended row.
type Grid[T any] struct {
	Rows, Columns int
	data          []T
}

// NewGrid returns an empty grid ready to receive rows.
func NewGrid[T any]() *Grid[T] {
	return &Grid[T]{}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// AppendRow adds a row to the bottom of the grid. Every row must have the
// width of the first one, and the total cell count must stay addressable
// with a 32-bit index.
func (g *Grid[T]) AppendRow(row []T) error {
	if g.Rows > 0 && len(row) != g.Columns {
		return fmt.Errorf("%w: got %d columns, want %d", ErrRowWidthMismatch, len(row), g.Columns)
	}
	if len(row) > math.MaxInt32 || (g.Rows+1)*len(row) > math.MaxInt32 {
		return fmt.Errorf("%w: %d rows of %d columns", ErrAddressOverflow, g.Rows+1, len(row))
	}
	g.Columns = len(row)
	g.Rows++
	g.data = append(g.data, row...)
	return nil
}

// Index returns the linear slice index for coordinates (row, column).
func (g *Grid[T]) Index(row, column int) int { return row*g.Columns + column }

// Coordinate is the inverse of Index.
func (g *Grid[T]) Coordinate(index int) (row, column int) {
	return index / g.Columns, index % g.Columns
}

// InBounds reports whether (row, column) lies inside the grid.
func (g *Grid[T]) InBounds(row, column int) bool {
	return row >= 0 && row < g.Rows && column >= 0 && column < g.Columns
}

// At returns the value stored at (row, column).
func (g *Grid[T]) At(row, column int) T { return g.data[g.Index(row, column)] }

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{Rows: g.Rows, Columns: g.Columns, data: append([]T(nil), g.data...)}
}
