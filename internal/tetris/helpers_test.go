package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// seqSource deals kinds in a fixed repeating order.
type seqSource struct {
	kinds []Kind
	i     int
}

func newSeqSource(kinds ...Kind) *seqSource {
	return &seqSource{kinds: kinds}
}

func (s *seqSource) Intn(n int) int {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return int(k-KindI) % n
}

func newTestGame(t *testing.T, rows, cols int, src PieceSource) *Game {
	t.Helper()
	if src == nil {
		src = rand.New(rand.NewSource(1))
	}
	g, err := New(rows, cols, src)
	require.NoError(t, err)
	return g
}

// setFalling replaces the falling piece, keeping it materialized.
func setFalling(t *testing.T, g *Game, b Block) {
	t.Helper()
	g.lift()
	g.falling = b
	g.materialize()
	require.True(t, g.onBoard, "falling piece %+v does not fit", b)
}

// fillRow fills row r with kind k except the listed columns.
func fillRow(g *Game, r int, k Kind, except ...int) {
	for c := 0; c < g.board.cols; c++ {
		if containsInt(except, c) {
			continue
		}
		g.board.put(Location{Row: r, Col: c}, Filled(k))
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// fallingFitsAlone reports whether the falling piece fits the board with
// its own cells excluded.
func fallingFitsAlone(g *Game) bool {
	b := g.board.Clone()
	if g.onBoard {
		Remove(b, g.falling)
	}
	return Fits(b, g.falling)
}

func rowCells(g *Game, r int) []Cell {
	out := make([]Cell, g.board.cols)
	copy(out, g.board.row(r))
	return out
}
