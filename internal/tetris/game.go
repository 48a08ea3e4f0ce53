package tetris

// DefaultRows and DefaultCols are the standard playfield size.
const (
	DefaultRows = 22
	DefaultCols = 10
)

// gameOverRows is the number of rows at the top of the board that end the
// game when any locked cell reaches them.
const gameOverRows = 2

// PieceSource supplies the random numbers used to draw new pieces.
// *rand.Rand satisfies it.
type PieceSource interface {
	Intn(n int) int
}

// Game is the complete state of one session. A Game is owned by a single
// goroutine; nothing in it is safe for concurrent use.
type Game struct {
	board *Board
	src   PieceSource

	falling Block
	next    Block
	held    Block

	// onBoard is true while the falling piece is materialized in board.
	onBoard bool

	points           int
	lines            int
	level            int
	ticksTillGravity int
	linesRemaining   int
	over             bool
}

// New starts a fresh game on an empty rows x cols board at level 0.
func New(rows, cols int, src PieceSource) (*Game, error) {
	return NewAtLevel(rows, cols, 0, src)
}

// NewAtLevel starts a fresh game with gravity and scoring of the given
// level, clamped to [0, MaxLevel].
func NewAtLevel(rows, cols, level int, src PieceSource) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:          board,
		src:            src,
		held:           NoBlock,
		level:          clampLevel(level),
		linesRemaining: LinesPerLevel,
	}
	g.next = g.drawBlock()
	g.spawn()
	g.materialize()
	return g, nil
}

// Tick advances the game by one time unit and applies at most one move.
// It returns false once the game is over; further calls are no-ops.
func (g *Game) Tick(move Move) bool {
	if g.over {
		return false
	}

	g.withFallingLifted(func() {
		if g.applyGravity() {
			return
		}
		g.applyMove(move)
	})

	cleared := g.clearLines()
	g.addLines(cleared)

	g.over = g.checkGameOver()
	return !g.over
}

// withFallingLifted runs fn with the falling piece removed from the board
// and materializes the (possibly new) falling piece afterwards, whatever
// path fn returns through.
func (g *Game) withFallingLifted(fn func()) {
	g.lift()
	defer g.materialize()
	fn()
}

func (g *Game) lift() {
	if g.onBoard {
		Remove(g.board, g.falling)
		g.onBoard = false
	}
}

// materialize paints the falling piece onto the board. A piece that does
// not fit (a top-out spawn) is left off so locked cells are never
// overwritten.
func (g *Game) materialize() {
	if g.onBoard {
		return
	}
	if Fits(g.board, g.falling) {
		Place(g.board, g.falling)
		g.onBoard = true
	}
}

// applyGravity counts down to the next automatic drop and performs it.
// It reports whether the falling piece locked.
func (g *Game) applyGravity() bool {
	g.ticksTillGravity--
	if g.ticksTillGravity > 0 {
		return false
	}

	g.falling.Loc.Row++
	if Fits(g.board, g.falling) {
		g.ticksTillGravity = GravityInterval(g.level)
		return false
	}
	g.falling.Loc.Row--
	g.lockFalling()
	return true
}

// lockFalling writes the falling piece permanently and spawns the next.
// Must be called with the piece lifted.
func (g *Game) lockFalling() {
	Place(g.board, g.falling)
	g.spawn()
}

// spawn promotes the queued piece to falling and draws a new one.
func (g *Game) spawn() {
	g.falling = g.next
	g.falling.Orientation = 0
	g.falling.Loc = g.spawnLocation()
	g.next = g.drawBlock()
	g.ticksTillGravity = GravityInterval(g.level)
}

func (g *Game) spawnLocation() Location {
	return Location{Row: 0, Col: g.board.cols/2 - 2}
}

func (g *Game) drawBlock() Block {
	return Block{
		Kind: Kind(g.src.Intn(NumKinds)) + KindI,
		Loc:  g.spawnLocation(),
	}
}

// checkGameOver reports whether any locked cell reached the top rows or
// the falling piece could not be placed.
func (g *Game) checkGameOver() bool {
	over := false
	g.withFallingLifted(func() {
		if !Fits(g.board, g.falling) {
			over = true
			return
		}
		for r := 0; r < gameOverRows; r++ {
			for _, c := range g.board.row(r) {
				if !c.IsEmpty() {
					over = true
					return
				}
			}
		}
	})
	return over
}

// Rows returns the board height.
func (g *Game) Rows() int { return g.board.rows }

// Cols returns the board width.
func (g *Game) Cols() int { return g.board.cols }

// Cell returns the cell at (row, col), including the falling piece.
// Out-of-bounds coordinates read as Empty.
func (g *Game) Cell(row, col int) Cell {
	c, err := g.board.Get(row, col)
	if err != nil {
		return Empty
	}
	return c
}

// Falling returns the active piece.
func (g *Game) Falling() Block { return g.falling }

// Next returns the queued piece.
func (g *Game) Next() Block { return g.next }

// Held returns the held piece, or NoBlock.
func (g *Game) Held() Block { return g.held }

// Points returns the score.
func (g *Game) Points() int { return g.points }

// Level returns the current level, 0 through MaxLevel.
func (g *Game) Level() int { return g.level }

// Lines returns the total number of cleared lines.
func (g *Game) Lines() int { return g.lines }

// LinesRemaining returns the lines still needed to reach the next level.
func (g *Game) LinesRemaining() int { return g.linesRemaining }

// TicksTillGravity returns the countdown to the next automatic drop.
func (g *Game) TicksTillGravity() int { return g.ticksTillGravity }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.over }
