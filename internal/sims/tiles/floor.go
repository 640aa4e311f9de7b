package tiles

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"settle/internal/core"
)

// Floor is the hex tile automaton: the black tile set plus its run
// configuration.
type Floor struct {
	cfg   Config
	black *BlackSet
	err   error
}

// New returns an all-white floor.
func New(cfg Config) *Floor {
	return &Floor{cfg: cfg, black: NewBlackSet()}
}

// Parse reads one tile per line: each line is a direction token stream
// walked from the origin, and the tile it reaches is flipped.
func Parse(r io.Reader, cfg Config) (*Floor, error) {
	f := New(cfg)
	sc := core.NewLineScanner(r)
	line := 0
	for sc.Scan() {
		line++
		dirs, err := ParseDirections(strings.TrimSpace(sc.Text()))
		if err != nil {
			var pe *core.ParseError
			if errors.As(err, &pe) {
				pe.Line = line
			}
			return nil, err
		}
		if _, err := f.Flip(Origin.Walk(dirs)); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &core.ParseError{Kind: core.IOFailure, Line: line + 1, Err: err}
	}
	return f, nil
}

// Flip toggles the tile at c and reports whether it is now black.
func (f *Floor) Flip(c Coord) (bool, error) {
	a, err := c.Address()
	if err != nil {
		return false, err
	}
	return f.black.Toggle(a), nil
}

// IsBlack reports whether the tile at c is black.
func (f *Floor) IsBlack(c Coord) bool {
	a, err := c.Address()
	return err == nil && f.black.Contains(a)
}

// Black exposes the black tile set.
func (f *Floor) Black() *BlackSet { return f.black }

// Name returns the simulation identifier.
func (f *Floor) Name() string { return "tiles" }

// Count returns the number of black tiles.
func (f *Floor) Count() int { return f.black.Len() }

// Err returns the error recorded by the last read phase.
func (f *Floor) Err() error { return f.err }

// Collect returns the addresses of every tile that flips in the next
// generation. Only black tiles and their white neighbors can flip, so no
// other tile is examined.
func (f *Floor) Collect() []Address {
	var flips []Address
	white := bitset.New(addressSpace)
	for _, a := range f.black.Addresses() {
		c := FromAddress(a)
		count := 0
		for _, n := range c.Neighbors() {
			na, err := n.Address()
			if err != nil {
				f.err = fmt.Errorf("neighbor of black tile %v: %w", c, err)
				return nil
			}
			if f.black.Contains(na) {
				count++
				continue
			}
			white.Set(uint(na))
		}
		if count == 0 || count > 2 {
			flips = append(flips, a)
		}
	}
	for i, ok := white.NextSet(0); ok; i, ok = white.NextSet(i + 1) {
		a := Address(i)
		if CountBlackNeighbors(FromAddress(a), f.black) == 2 {
			flips = append(flips, a)
		}
	}
	return flips
}

// Apply toggles every flipped tile.
func (f *Floor) Apply(flips []Address) {
	for _, a := range flips {
		f.black.Toggle(a)
	}
}

// Run evolves the floor for the configured number of days.
func (f *Floor) Run(opts ...core.Option) (core.Result, error) {
	return core.NewEngine[Address](f, core.FixedGenerations(f.cfg.Days), opts...).Run()
}
