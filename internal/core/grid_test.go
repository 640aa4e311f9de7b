package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid[uint8]()
	for r := 0; r < 4; r++ {
		require.NoError(t, g.AppendRow(make([]uint8, 7)))
	}
	assert.Equal(t, 4, g.Rows)
	assert.Equal(t, 7, g.Columns)
	assert.Len(t, g.Cells(), 28)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Columns; c++ {
			idx := g.Index(r, c)
			assert.Equal(t, r*7+c, idx)
			gr, gc := g.Coordinate(idx)
			assert.Equal(t, [2]int{r, c}, [2]int{gr, gc})
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid[uint8]()
	require.NoError(t, g.AppendRow([]uint8{1, 2, 3}))
	require.NoError(t, g.AppendRow([]uint8{4, 5, 6}))

	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(1, 2))
	assert.False(t, g.InBounds(-1, 0))
	assert.False(t, g.InBounds(0, 3))
	assert.False(t, g.InBounds(2, 0))
	assert.Equal(t, uint8(6), g.At(1, 2))
}

func TestGridRejectsRowWidthMismatch(t *testing.T) {
	g := NewGrid[uint8]()
	require.NoError(t, g.AppendRow([]uint8{1, 2, 3}))

	err := g.AppendRow([]uint8{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRowWidthMismatch))
	assert.Equal(t, 1, g.Rows, "rejected row must not be stored")
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid[uint8]()
	require.NoError(t, g.AppendRow([]uint8{1, 2}))
	c := g.Clone()
	c.Cells()[0] = 9
	assert.Equal(t, uint8(1), g.At(0, 0))
}
