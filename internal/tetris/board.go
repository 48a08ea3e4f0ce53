package tetris

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for board access outside the grid.
	ErrOutOfBounds = errors.New("tetris: location out of bounds")

	// ErrInvalidDimensions is returned when a board is requested with a
	// size the engine cannot play on.
	ErrInvalidDimensions = errors.New("tetris: invalid board dimensions")
)

// MinRows and MinCols are the smallest playable board dimensions.
const (
	MinRows = 4
	MinCols = 4
)

// Location is a (row, col) grid coordinate. Row 0 is the top of the board.
type Location struct {
	Row int
	Col int
}

// Add returns the location offset by d.
func (l Location) Add(d Location) Location {
	return Location{Row: l.Row + d.Row, Col: l.Col + d.Col}
}

// Cell is the content of one board square: Empty or the kind of the
// piece that fills it.
type Cell uint8

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// Filled returns the cell value for a square occupied by kind k.
func Filled(k Kind) Cell {
	return Cell(k)
}

// IsEmpty reports whether the cell is unoccupied.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Kind returns the kind occupying the cell, or KindNone if it is empty.
func (c Cell) Kind() Kind {
	return Kind(c)
}

// valid reports whether c is Empty or tagged with a playable kind.
func (c Cell) valid() bool {
	return c == Empty || Kind(c).Valid()
}

// Board is a fixed-size grid of cells stored in row-major order.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidDimensions, rows, cols, MinRows, MinCols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return b.cells[row*b.cols+col], nil
}

// Set overwrites the cell at (row, col).
func (b *Board) Set(row, col int, c Cell) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	b.cells[row*b.cols+col] = c
	return nil
}

// at returns the cell at an in-bounds location.
func (b *Board) at(l Location) Cell {
	return b.cells[l.Row*b.cols+l.Col]
}

// put writes the cell at an in-bounds location.
func (b *Board) put(l Location, c Cell) {
	b.cells[l.Row*b.cols+l.Col] = c
}

// row returns the slice backing row r.
func (b *Board) row(r int) []Cell {
	return b.cells[r*b.cols : (r+1)*b.cols]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}
