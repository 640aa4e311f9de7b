package seating

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"settle/internal/core"
	pkgcore "settle/pkg/core"
)

// Layout holds the seating grid and the rule configuration applied to it.
type Layout struct {
	cfg  Config
	grid *core.Grid[Cell]
	err  error
}

// New returns an empty layout ready to ingest rows.
func New(cfg Config) *Layout {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Layout{cfg: cfg, grid: core.NewGrid[Cell]()}
}

// Parse reads one row per line from r. Surrounding whitespace is trimmed
// from each line.
func Parse(r io.Reader, cfg Config) (*Layout, error) {
	l := New(cfg)
	sc := core.NewLineScanner(r)
	for sc.Scan() {
		if err := l.AddLine(strings.TrimSpace(sc.Text())); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &core.ParseError{Kind: core.IOFailure, Line: l.grid.Rows + 1, Err: err}
	}
	return l, nil
}

// Generate builds a random rows x columns layout from a deterministic seed.
// Dimensions whose cell count does not fit the grid address space are
// rejected with ErrAddressOverflow before anything is allocated.
func Generate(rows, columns int, seed int64, cfg Config) (*Layout, error) {
	if rows < 0 || columns < 0 {
		return nil, fmt.Errorf("negative dimensions %dx%d", rows, columns)
	}
	if columns > 0 && rows > math.MaxInt32/columns {
		return nil, fmt.Errorf("%w: %d rows of %d columns", core.ErrAddressOverflow, rows, columns)
	}
	l := New(cfg)
	rng := pkgcore.NewRNG(seed)
	row := make([]Cell, columns)
	for r := 0; r < rows; r++ {
		pkgcore.Fill(rng, row, 3)
		if err := l.grid.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// AddLine appends a row given in the '.', 'L', '#' alphabet.
func (l *Layout) AddLine(line string) error {
	lineNo := l.grid.Rows + 1
	row := make([]Cell, len(line))
	for i := 0; i < len(line); i++ {
		c, ok := parseCell(line[i])
		if !ok {
			return &core.ParseError{
				Kind:   core.UnexpectedCharacter,
				Line:   lineNo,
				Column: i + 1,
				Err:    fmt.Errorf("%w %q", core.ErrUnexpectedCharacter, line[i]),
			}
		}
		row[i] = c
	}
	if err := l.grid.AppendRow(row); err != nil {
		if errors.Is(err, core.ErrRowWidthMismatch) {
			return &core.ParseError{Kind: core.RowWidthMismatch, Line: lineNo, Err: err}
		}
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	return nil
}

// Name returns the simulation identifier.
func (l *Layout) Name() string { return "seating" }

// Err returns the error recorded by the last read phase.
func (l *Layout) Err() error { return l.err }

// Policy returns the neighbor detection policy.
func (l *Layout) Policy() Policy { return l.cfg.Policy }

// Rows returns the number of rows.
func (l *Layout) Rows() int { return l.grid.Rows }

// Columns returns the number of columns.
func (l *Layout) Columns() int { return l.grid.Columns }

// Cells exposes the current grid values in row-major order.
func (l *Layout) Cells() []Cell { return l.grid.Cells() }

// At returns the cell at (row, column).
func (l *Layout) At(row, column int) Cell { return l.grid.At(row, column) }

// Count returns the number of occupied seats.
func (l *Layout) Count() int {
	n := 0
	for _, c := range l.grid.Cells() {
		if c == Occupied {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the layout.
func (l *Layout) Clone() *Layout {
	return &Layout{cfg: l.cfg, grid: l.grid.Clone()}
}

// String renders the grid in the input alphabet, one line per row.
func (l *Layout) String() string {
	var b strings.Builder
	b.Grow((l.grid.Columns + 1) * l.grid.Rows)
	for row := 0; row < l.grid.Rows; row++ {
		for column := 0; column < l.grid.Columns; column++ {
			b.WriteByte(l.grid.At(row, column).Byte())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
