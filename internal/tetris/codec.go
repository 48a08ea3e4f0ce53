package tetris

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrCorruptData is returned when a saved game cannot be decoded.
var ErrCorruptData = errors.New("tetris: corrupt save data")

// Save format: a fixed big-endian header followed by one byte per cell,
// row-major. The header starts with a magic tag and a format version.
const (
	saveMagic   = "TTRS"
	saveVersion = 1
)

type wireBlock struct {
	Kind        uint8
	Orientation uint8
	Row         int16
	Col         int16
}

type wireHeader struct {
	Magic            [4]byte
	Version          uint16
	Rows             uint16
	Cols             uint16
	Points           uint32
	Lines            uint32
	Level            uint8
	LinesRemaining   uint8
	TicksTillGravity uint16
	Falling          wireBlock
	Next             wireBlock
	Held             wireBlock
}

var headerSize = binary.Size(wireHeader{})

// MarshalBinary encodes the full game state. The falling piece is stored
// as a pose only; the cell grid holds locked cells.
func (g *Game) MarshalBinary() ([]byte, error) {
	if uint64(g.points) > math.MaxUint32 || uint64(g.lines) > math.MaxUint32 {
		return nil, fmt.Errorf("tetris: score too large to save (%d points, %d lines)", g.points, g.lines)
	}
	if g.board.rows > math.MaxInt16 || g.board.cols > math.MaxInt16 {
		return nil, fmt.Errorf("tetris: board too large to save (%dx%d)", g.board.rows, g.board.cols)
	}

	h := wireHeader{
		Version:          saveVersion,
		Rows:             uint16(g.board.rows),
		Cols:             uint16(g.board.cols),
		Points:           uint32(g.points),
		Lines:            uint32(g.lines),
		Level:            uint8(g.level),
		LinesRemaining:   uint8(g.linesRemaining),
		TicksTillGravity: uint16(max(g.ticksTillGravity, 0)),
		Falling:          toWire(g.falling),
		Next:             toWire(g.next),
		Held:             toWire(g.held),
	}
	copy(h.Magic[:], saveMagic)

	locked := g.board.Clone()
	if g.onBoard {
		Remove(locked, g.falling)
	}

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(locked.cells)))
	if err := binary.Write(buf, binary.BigEndian, h); err != nil {
		return nil, fmt.Errorf("tetris: encode header: %w", err)
	}
	for _, c := range locked.cells {
		buf.WriteByte(byte(c))
	}
	return buf.Bytes(), nil
}

// Load decodes a game written by MarshalBinary. New pieces are drawn from
// src. Any malformed input yields an error wrapping ErrCorruptData.
func Load(data []byte, src PieceSource) (*Game, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte header", ErrCorruptData, len(data), headerSize)
	}

	var h wireHeader
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if string(h.Magic[:]) != saveMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorruptData, h.Magic[:])
	}
	if h.Version != saveVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrCorruptData, h.Version)
	}

	if h.Rows > math.MaxInt16 || h.Cols > math.MaxInt16 {
		return nil, fmt.Errorf("%w: board %dx%d too large", ErrCorruptData, h.Rows, h.Cols)
	}
	cells := data[headerSize:]
	if want := int(h.Rows) * int(h.Cols); len(cells) != want {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrCorruptData, want, len(cells))
	}
	board, err := NewBoard(int(h.Rows), int(h.Cols))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	for i, b := range cells {
		c := Cell(b)
		if !c.valid() {
			return nil, fmt.Errorf("%w: invalid cell value %d at index %d", ErrCorruptData, b, i)
		}
		board.cells[i] = c
	}

	if int(h.Level) > MaxLevel {
		return nil, fmt.Errorf("%w: level %d out of range", ErrCorruptData, h.Level)
	}
	if h.LinesRemaining == 0 || int(h.LinesRemaining) > LinesPerLevel {
		return nil, fmt.Errorf("%w: lines remaining %d out of range", ErrCorruptData, h.LinesRemaining)
	}

	falling, err := fromWire(h.Falling, false)
	if err != nil {
		return nil, fmt.Errorf("%w: falling piece: %v", ErrCorruptData, err)
	}
	next, err := fromWire(h.Next, false)
	if err != nil {
		return nil, fmt.Errorf("%w: next piece: %v", ErrCorruptData, err)
	}
	held, err := fromWire(h.Held, true)
	if err != nil {
		return nil, fmt.Errorf("%w: held piece: %v", ErrCorruptData, err)
	}

	g := &Game{
		board:            board,
		src:              src,
		falling:          falling,
		next:             next,
		held:             held,
		points:           int(h.Points),
		lines:            int(h.Lines),
		level:            int(h.Level),
		ticksTillGravity: int(h.TicksTillGravity),
		linesRemaining:   int(h.LinesRemaining),
	}
	g.materialize()
	g.over = g.checkGameOver()
	return g, nil
}

func toWire(b Block) wireBlock {
	return wireBlock{
		Kind:        uint8(b.Kind),
		Orientation: uint8(b.Orientation),
		Row:         int16(b.Loc.Row),
		Col:         int16(b.Loc.Col),
	}
}

func fromWire(w wireBlock, allowNone bool) (Block, error) {
	k := Kind(w.Kind)
	switch {
	case k == KindNone && allowNone:
		return NoBlock, nil
	case !k.Valid():
		return Block{}, fmt.Errorf("invalid kind %d", w.Kind)
	case w.Orientation >= NumOrientations:
		return Block{}, fmt.Errorf("invalid orientation %d", w.Orientation)
	}
	return Block{
		Kind:        k,
		Orientation: Orientation(w.Orientation),
		Loc:         Location{Row: int(w.Row), Col: int(w.Col)},
	}, nil
}
