package tetris

// Move is a discrete player command consumed by Tick.
type Move int

const (
	MoveNone Move = iota
	MoveLeft
	MoveRight
	MoveRotateClockwise
	MoveRotateCounterClockwise
	MoveDrop
	MoveHold
)

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveNone:
		return "None"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	case MoveRotateClockwise:
		return "RotateClockwise"
	case MoveRotateCounterClockwise:
		return "RotateCounterClockwise"
	case MoveDrop:
		return "Drop"
	case MoveHold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// applyMove resolves one player move against the board. The falling piece
// must be lifted. Unknown moves are ignored.
func (g *Game) applyMove(m Move) {
	switch m {
	case MoveLeft:
		g.shift(-1)
	case MoveRight:
		g.shift(1)
	case MoveDrop:
		g.hardDrop()
	case MoveRotateClockwise:
		g.rotate(1)
	case MoveRotateCounterClockwise:
		g.rotate(-1)
	case MoveHold:
		g.hold()
	}
}

func (g *Game) shift(dir int) {
	g.falling.Loc.Col += dir
	if !Fits(g.board, g.falling) {
		g.falling.Loc.Col -= dir
	}
}

// hardDrop moves the piece to the lowest fitting row and locks it.
func (g *Game) hardDrop() {
	for {
		g.falling.Loc.Row++
		if !Fits(g.board, g.falling) {
			g.falling.Loc.Row--
			break
		}
	}
	g.lockFalling()
}

// rotate turns the piece one step in dir. When the new orientation does
// not fit, it tries one column left, then one column right, then moves on
// to the next orientation in the same direction. A full cycle lands back
// on the starting pose, which is known to fit.
func (g *Game) rotate(dir int) {
	start := g.falling
	for range NumOrientations {
		g.falling.Orientation = g.falling.Orientation.Rotate(dir)
		if Fits(g.board, g.falling) {
			return
		}
		g.falling.Loc.Col--
		if Fits(g.board, g.falling) {
			return
		}
		g.falling.Loc.Col += 2
		if Fits(g.board, g.falling) {
			return
		}
		g.falling.Loc.Col--
	}
	g.falling = start
}

// hold stashes the falling piece, or swaps it with the held one.
func (g *Game) hold() {
	if g.held.IsNone() {
		g.held = Block{Kind: g.falling.Kind, Orientation: g.falling.Orientation}
		g.spawn()
		return
	}

	prevFalling, prevHeld := g.falling, g.held
	g.falling.Kind, g.falling.Orientation = prevHeld.Kind, prevHeld.Orientation
	g.held = Block{Kind: prevFalling.Kind, Orientation: prevFalling.Orientation}

	// Shift up until the swapped-in shape clears whatever is under it.
	for !Fits(g.board, g.falling) {
		if g.falling.Loc.Row < -maxShapeRow {
			g.falling, g.held = prevFalling, prevHeld
			return
		}
		g.falling.Loc.Row--
	}
}

// Ghost returns the falling piece moved to the row a hard drop would land
// on. Renderers use it as a landing preview.
func (g *Game) Ghost() Block {
	ghost := g.falling
	if !g.onBoard {
		return ghost
	}
	own := g.falling.Cells()
	fits := func(b Block) bool {
		for _, l := range b.Cells() {
			if !g.board.InBounds(l.Row, l.Col) {
				return false
			}
			if g.board.at(l).IsEmpty() {
				continue
			}
			if !containsLocation(own[:], l) {
				return false
			}
		}
		return true
	}
	for {
		ghost.Loc.Row++
		if !fits(ghost) {
			ghost.Loc.Row--
			return ghost
		}
	}
}

func containsLocation(ls []Location, l Location) bool {
	for _, x := range ls {
		if x == l {
			return true
		}
	}
	return false
}
