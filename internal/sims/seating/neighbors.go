package seating

// directions lists the eight compass steps as (row, column) deltas.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// occupiedToward reports whether the neighbor seen from (row, column) along
// (dr, dc) is occupied. Under the adjacent policy only the first step is
// examined; under line-of-sight floor cells are skipped.
func (l *Layout) occupiedToward(row, column, dr, dc int) bool {
	for {
		row += dr
		column += dc
		if !l.grid.InBounds(row, column) {
			return false
		}
		switch l.grid.At(row, column) {
		case Empty:
			return false
		case Occupied:
			return true
		}
		if l.cfg.Policy != LineOfSight {
			return false
		}
	}
}

// CountOccupiedNeighbors counts occupied neighbors of (row, column) under
// the layout's policy. When expectingZero is set the scan stops at the first
// occupant; otherwise it stops once the policy threshold is reached.
func (l *Layout) CountOccupiedNeighbors(row, column int, expectingZero bool) int {
	limit := l.cfg.Policy.Threshold()
	count := 0
	for _, d := range directions {
		if !l.occupiedToward(row, column, d[0], d[1]) {
			continue
		}
		count++
		if expectingZero || count >= limit {
			return count
		}
	}
	return count
}
