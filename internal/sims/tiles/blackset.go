package tiles

import "github.com/bits-and-blooms/bitset"

// BlackSet holds the addresses of black tiles. Absent addresses are white.
type BlackSet struct {
	bits *bitset.BitSet
}

// NewBlackSet returns an all-white set spanning the full address space.
func NewBlackSet() *BlackSet {
	return &BlackSet{bits: bitset.New(addressSpace)}
}

// Toggle flips the tile and reports whether it is now black.
func (s *BlackSet) Toggle(a Address) bool {
	s.bits.Flip(uint(a))
	return s.bits.Test(uint(a))
}

// Contains reports whether the tile is black.
func (s *BlackSet) Contains(a Address) bool { return s.bits.Test(uint(a)) }

// Len returns the number of black tiles.
func (s *BlackSet) Len() int { return int(s.bits.Count()) }

// Addresses returns the black tiles in ascending address order.
func (s *BlackSet) Addresses() []Address {
	out := make([]Address, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, Address(i))
	}
	return out
}

// Clone returns an independent copy of the set.
func (s *BlackSet) Clone() *BlackSet { return &BlackSet{bits: s.bits.Clone()} }

// Equal reports whether both sets hold the same tiles.
func (s *BlackSet) Equal(o *BlackSet) bool { return s.bits.Equal(o.bits) }

// CountBlackNeighbors counts black tiles among the six neighbors of c. The
// scan stops once the count exceeds 2, since no rule distinguishes larger
// values. Neighbors outside the address space are never black.
func CountBlackNeighbors(c Coord, black *BlackSet) int {
	count := 0
	for _, n := range c.Neighbors() {
		a, err := n.Address()
		if err != nil || !black.Contains(a) {
			continue
		}
		count++
		if count > 2 {
			return count
		}
	}
	return count
}
