package tetris

// Snapshot is a read-only copy of the game taken between ticks, used by
// renderers and for determinism checks.
type Snapshot struct {
	Rows             int
	Cols             int
	Cells            []Cell // row-major, falling piece included
	Falling          Block
	Ghost            Block
	Next             Block
	Held             Block
	Points           int
	Level            int
	Lines            int
	LinesRemaining   int
	TicksTillGravity int
	Over             bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	cells := make([]Cell, len(g.board.cells))
	copy(cells, g.board.cells)
	return Snapshot{
		Rows:             g.board.rows,
		Cols:             g.board.cols,
		Cells:            cells,
		Falling:          g.falling,
		Ghost:            g.Ghost(),
		Next:             g.next,
		Held:             g.held,
		Points:           g.points,
		Level:            g.level,
		Lines:            g.lines,
		LinesRemaining:   g.linesRemaining,
		TicksTillGravity: g.ticksTillGravity,
		Over:             g.over,
	}
}

// At returns the cell at (row, col), or Empty when out of range.
func (s Snapshot) At(row, col int) Cell {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return Empty
	}
	return s.Cells[row*s.Cols+col]
}
