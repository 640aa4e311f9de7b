package tiles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settle/internal/core"
)

func TestAddressRoundTripsEveryCoordinate(t *testing.T) {
	for x := -128; x <= 127; x++ {
		for y := -128; y <= 127; y++ {
			c := Coord{X: x, Y: y}
			a, err := c.Address()
			if err != nil {
				t.Fatalf("%v: unexpected error %v", c, err)
			}
			if got := FromAddress(a); got != c {
				t.Fatalf("FromAddress(%d) = %v, want %v", a, got, c)
			}
		}
	}
}

func TestFromAddressRoundTripsEveryAddress(t *testing.T) {
	for i := 0; i < addressSpace; i++ {
		a := Address(i)
		back, err := FromAddress(a).Address()
		if err != nil || back != a {
			t.Fatalf("address %d round-tripped to %d (err %v)", a, back, err)
		}
	}
}

func TestAddressPacking(t *testing.T) {
	a, err := Origin.Address()
	require.NoError(t, err)
	assert.Equal(t, Address(128<<8|128), a)

	a, err = Coord{X: -128, Y: 127}.Address()
	require.NoError(t, err)
	assert.Equal(t, Address(0x00FF), a)
}

func TestAddressOutOfRange(t *testing.T) {
	for _, c := range []Coord{{X: 128}, {X: -129}, {Y: 128}, {Y: -129}} {
		_, err := c.Address()
		assert.True(t, errors.Is(err, core.ErrOutOfRange), "%v", c)
	}
}

func TestDirectionDeltas(t *testing.T) {
	want := map[Direction]Coord{
		East:      {2, 0},
		Southeast: {1, -2},
		Southwest: {-1, -2},
		West:      {-2, 0},
		Northwest: {-1, 2},
		Northeast: {1, 2},
	}
	for d, delta := range want {
		assert.Equal(t, delta, Origin.Step(d), d.String())
	}

	// Opposite directions cancel.
	assert.Equal(t, Origin, Origin.Step(East).Step(West))
	assert.Equal(t, Origin, Origin.Step(Northeast).Step(Southwest))
	assert.Equal(t, Origin, Origin.Step(Northwest).Step(Southeast))
}

func TestNeighborsAreDistinct(t *testing.T) {
	seen := map[Coord]bool{}
	for _, n := range (Coord{X: 3, Y: -4}).Neighbors() {
		assert.False(t, seen[n])
		seen[n] = true
	}
	assert.Len(t, seen, 6)
}

func TestDirectionStrings(t *testing.T) {
	var names []string
	for _, d := range Directions {
		names = append(names, d.String())
	}
	assert.Equal(t, []string{"e", "se", "sw", "w", "nw", "ne"}, names)
}
