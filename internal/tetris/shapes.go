// Package tetris implements the falling-block game engine: the board,
// tetromino geometry, the per-tick state machine and the save format.
// It has no external dependencies so it can be driven by any front end.
package tetris

import "fmt"

// Kind identifies one of the seven tetrominoes.
// KindNone is the sentinel used for an empty hold slot.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// NumKinds is the number of playable tetromino kinds.
const NumKinds = 7

// NumOrientations is the number of rotation states per piece.
const NumOrientations = 4

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	case KindNone:
		return "-"
	default:
		return "?"
	}
}

// Orientation is a rotation state in [0, NumOrientations).
type Orientation uint8

// Rotate returns the orientation reached after delta quarter turns
// (positive is clockwise). Negative deltas wrap around.
func (o Orientation) Rotate(delta int) Orientation {
	n := (int(o) + delta) % NumOrientations
	if n < 0 {
		n += NumOrientations
	}
	return Orientation(n)
}

// shapes holds the cell offsets of every kind and orientation, relative to
// the block anchor. Indexed by Kind-1.
var shapes = [NumKinds][NumOrientations][4]Location{
	// I
	{
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	// J
	{
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	// L
	{
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
	// O
	{
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	// S
	{
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	// T
	{
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	// Z
	{
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
}

// maxShapeRow is the largest row offset used by any shape.
const maxShapeRow = 3

// Offsets returns the four cell offsets of kind k in orientation o.
// The orientation is taken modulo NumOrientations. Passing an invalid
// kind is a programming error and panics.
func Offsets(k Kind, o Orientation) [4]Location {
	if !k.Valid() {
		panic(fmt.Sprintf("tetris: invalid kind %d", k))
	}
	return shapes[k-1][o%NumOrientations]
}
