package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches the
// embedded defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows: 22,
			Cols: 10,
		},
		Timing: TimingConfig{
			TickMS: 10,
		},
		Keys: KeysConfig{
			Left:      []string{"left", "a"},
			Right:     []string{"right", "d"},
			RotateCW:  []string{"up", "x", "w"},
			RotateCCW: []string{"z"},
			Drop:      []string{" ", "s"},
			Hold:      []string{"c"},
			Pause:     []string{"p", "esc"},
			Save:      []string{"ctrl+s"},
			Restart:   []string{"r"},
			Quit:      []string{"q", "ctrl+c"},
		},
		Storage: StorageConfig{
			SlotsApp: "tui-tetris",
		},
	}
}
