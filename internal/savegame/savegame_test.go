package savegame

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func newPlayedGame(t *testing.T, seed int64) *tetris.Game {
	t.Helper()
	g, err := tetris.New(tetris.DefaultRows, tetris.DefaultCols, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	input := rand.New(rand.NewSource(seed))
	for range 300 {
		if !g.Tick(tetris.Move(input.Intn(7))) {
			break
		}
	}
	return g
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.tetris")
	g := newPlayedGame(t, 42)

	require.NoError(t, SaveFile(path, g))
	loaded, err := LoadFile(path, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, g.Snapshot(), loaded.Snapshot())

	// Overwrite in place, no temp files left behind.
	g.Tick(tetris.MoveDrop)
	require.NoError(t, SaveFile(path, g))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing"), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk")
	require.NoError(t, os.WriteFile(junk, []byte("not a save"), 0o644))
	_, err = LoadFile(junk, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, tetris.ErrCorruptData)
}

func TestSaveFileMissingDirectory(t *testing.T) {
	g := newPlayedGame(t, 1)
	err := SaveFile(filepath.Join(t.TempDir(), "no", "such", "dir", "game"), g)
	assert.Error(t, err)
}

func TestNilSlotsDegrade(t *testing.T) {
	var s *Slots
	g := newPlayedGame(t, 3)

	assert.False(t, s.Available())
	assert.NoError(t, s.Save("quick", g))
	assert.False(t, s.Exists("quick"))
	_, err := s.Load("quick", rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoSlot)
}

func openTestSlots(t *testing.T) *Slots {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	s, err := OpenSlots(fmt.Sprintf("tetris_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("slot storage unavailable: %v", err)
	}
	return s
}

func TestSlotsRoundTrip(t *testing.T) {
	s := openTestSlots(t)
	g := newPlayedGame(t, 7)

	assert.False(t, s.Exists("quick"))
	_, err := s.Load("quick", rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoSlot)

	require.NoError(t, s.Save("quick", g))
	assert.True(t, s.Exists("quick"))

	loaded, err := s.Load("quick", rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, g.Snapshot(), loaded.Snapshot())
}

func TestSlotNames(t *testing.T) {
	s := openTestSlots(t)
	g := newPlayedGame(t, 9)

	for _, name := range []string{"", "../etc", "with space", "a/b"} {
		assert.ErrorIs(t, s.Save(name, g), ErrBadSlotName, "name %q", name)
		_, err := s.Load(name, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrBadSlotName, "name %q", name)
		assert.False(t, s.Exists(name))
	}
	assert.NoError(t, s.Save("slot_2-b", g))
}

func TestSlotNameFor(t *testing.T) {
	assert.Equal(t, "ada", SlotNameFor("ada"))

	odd := SlotNameFor("../etc")
	assert.True(t, ValidSlotName(odd))
	assert.Equal(t, odd, SlotNameFor("../etc"))
	assert.NotEqual(t, odd, SlotNameFor("with space"))
	assert.True(t, ValidSlotName(SlotNameFor("")))
}
