package seating

import (
	"golang.org/x/sync/errgroup"

	"settle/internal/core"
)

var _ core.Failer = (*Layout)(nil)

// Change records the state a cell takes in the next generation.
type Change struct {
	Address int
	Cell    Cell
}

// Collect computes the changeset of the next generation from the current
// grid without modifying it. Changes are ordered by address. With more than
// one worker the rows are split into contiguous bands evaluated
// concurrently; the result is identical to the sequential scan. A failed
// band is reported through Err and yields no changes.
func (l *Layout) Collect() []Change {
	l.err = nil
	rows := l.grid.Rows
	workers := l.cfg.Workers
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		return l.collectRows(0, rows)
	}

	band := (rows + workers - 1) / workers
	parts := make([][]Change, workers)
	var g errgroup.Group
	for i := range parts {
		from := i * band
		to := min(from+band, rows)
		if from >= to {
			continue
		}
		g.Go(func() error {
			parts[i] = l.collectRows(from, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.err = err
		return nil
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	changes := make([]Change, 0, total)
	for _, p := range parts {
		changes = append(changes, p...)
	}
	return changes
}

func (l *Layout) collectRows(from, to int) []Change {
	var changes []Change
	threshold := l.cfg.Policy.Threshold()
	for row := from; row < to; row++ {
		for column := 0; column < l.grid.Columns; column++ {
			switch l.grid.At(row, column) {
			case Empty:
				if l.CountOccupiedNeighbors(row, column, true) == 0 {
					changes = append(changes, Change{Address: l.grid.Index(row, column), Cell: Occupied})
				}
			case Occupied:
				if l.CountOccupiedNeighbors(row, column, false) >= threshold {
					changes = append(changes, Change{Address: l.grid.Index(row, column), Cell: Empty})
				}
			}
		}
	}
	return changes
}

// Apply writes every change into the grid.
func (l *Layout) Apply(changes []Change) {
	cells := l.grid.Cells()
	for _, c := range changes {
		cells[c.Address] = c.Cell
	}
}

// Run evolves the layout until no seat changes.
func (l *Layout) Run(opts ...core.Option) (core.Result, error) {
	return core.NewEngine[Change](l, core.UntilConverged(), opts...).Run()
}
