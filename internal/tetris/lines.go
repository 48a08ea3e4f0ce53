package tetris

// clearLines removes every full row, compacting the rows above it, and
// returns how many rows were cleared. The falling piece never counts.
func (g *Game) clearLines() int {
	cleared := 0
	g.withFallingLifted(func() {
		r := g.board.rows - 1
		for r >= 0 {
			if g.board.rowFull(r) {
				// Row r now holds what was above it; test it again.
				g.board.collapseRow(r)
				cleared++
				continue
			}
			r--
		}
	})
	return cleared
}

// addLines awards points for n simultaneous clears and advances the level
// when the quota is met. Overflow lines count towards the next level.
func (g *Game) addLines(n int) {
	g.points += LineScore(n, g.level)
	g.lines += n

	if n >= g.linesRemaining {
		g.level = min(MaxLevel, g.level+1)
		n -= g.linesRemaining
		g.linesRemaining = LinesPerLevel - n
		return
	}
	g.linesRemaining -= n
}

// rowFull reports whether every cell of row r is occupied.
func (b *Board) rowFull(r int) bool {
	for _, c := range b.row(r) {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// collapseRow deletes row r: every row above moves down one and the top
// row becomes empty.
func (b *Board) collapseRow(r int) {
	for i := r; i > 0; i-- {
		copy(b.row(i), b.row(i-1))
	}
	clear(b.row(0))
}
