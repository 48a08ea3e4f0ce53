package tetris

// Block is a piece instance: its kind, rotation and anchor location.
// It describes the falling piece, the next piece and the held piece.
type Block struct {
	Kind        Kind
	Orientation Orientation
	Loc         Location
}

// NoBlock is the empty hold slot.
var NoBlock = Block{Kind: KindNone}

// IsNone reports whether b is the "no piece" sentinel.
func (b Block) IsNone() bool {
	return b.Kind == KindNone
}

// Cells returns the four board locations the block occupies.
func (b Block) Cells() [4]Location {
	offsets := Offsets(b.Kind, b.Orientation)
	var cells [4]Location
	for i, d := range offsets {
		cells[i] = b.Loc.Add(d)
	}
	return cells
}

// Fits reports whether every cell of the block is on the board and empty.
// It is the only admissibility test used for piece motion.
func Fits(board *Board, b Block) bool {
	for _, l := range b.Cells() {
		if !board.InBounds(l.Row, l.Col) {
			return false
		}
		if !board.at(l).IsEmpty() {
			return false
		}
	}
	return true
}

// Place writes the block's kind into its cells. Cells off the board are
// skipped; the caller is expected to have checked Fits.
func Place(board *Board, b Block) {
	paint(board, b, Filled(b.Kind))
}

// Remove clears the block's cells back to Empty.
func Remove(board *Board, b Block) {
	paint(board, b, Empty)
}

func paint(board *Board, b Block, c Cell) {
	for _, l := range b.Cells() {
		if board.InBounds(l.Row, l.Col) {
			board.put(l, c)
		}
	}
}
