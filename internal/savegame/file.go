// Package savegame persists tetris games: to a plain file given on the
// command line, or to named slots in the per-user data directory.
package savegame

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// SaveFile writes the game to path. The data goes to a temporary file in
// the same directory first and is renamed into place, so a crash never
// leaves a half-written save.
func SaveFile(path string, g *tetris.Game) error {
	data, err := g.MarshalBinary()
	if err != nil {
		return fmt.Errorf("savegame: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("savegame: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName) //nolint:errcheck // Best-effort cleanup
		return fmt.Errorf("savegame: cannot write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck // Best-effort cleanup
		return fmt.Errorf("savegame: cannot write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName) //nolint:errcheck // Best-effort cleanup
		return fmt.Errorf("savegame: cannot replace %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a game written by SaveFile. New pieces are drawn from
// src. A missing file reports an error wrapping os.ErrNotExist; bad
// contents wrap tetris.ErrCorruptData.
func LoadFile(path string, src tetris.PieceSource) (*tetris.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot read %s: %w", path, err)
	}
	g, err := tetris.Load(data, src)
	if err != nil {
		return nil, fmt.Errorf("savegame: %s: %w", path, err)
	}
	return g, nil
}
