// Package config provides YAML-based configuration loading for the
// tetris front ends: board size, tick rate, key bindings and storage
// locations.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Keys    KeysConfig    `yaml:"keys"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig sets the playfield size and the starting level.
type BoardConfig struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	StartLevel int `yaml:"start_level"`
}

// TimingConfig controls how often the engine is ticked.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"` // Milliseconds per engine tick
}

// TickInterval returns the tick period as a duration.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// KeysConfig lists the key names bound to each action. Names follow
// Bubble Tea's key strings ("left", "ctrl+s", " " for space).
type KeysConfig struct {
	Left      []string `yaml:"left"`
	Right     []string `yaml:"right"`
	RotateCW  []string `yaml:"rotate_cw"`
	RotateCCW []string `yaml:"rotate_ccw"`
	Drop      []string `yaml:"drop"`
	Hold      []string `yaml:"hold"`
	Pause     []string `yaml:"pause"`
	Save      []string `yaml:"save"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// StorageConfig locates the high score database and the save slots.
type StorageConfig struct {
	ScoresDB string `yaml:"scores_db"` // empty means ~/.tetris/scores.db
	SlotsApp string `yaml:"slots_app"` // gdata application name for save slots
}

// Validate reports the first out-of-range value.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Rows < 4 || c.Board.Cols < 4:
		return fmt.Errorf("%w: board %dx%d is smaller than 4x4", ErrInvalidConfig, c.Board.Rows, c.Board.Cols)
	case c.Board.StartLevel < 0 || c.Board.StartLevel > 19:
		return fmt.Errorf("%w: start_level %d outside 0..19", ErrInvalidConfig, c.Board.StartLevel)
	case c.Timing.TickMS <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.Timing.TickMS)
	case c.Storage.SlotsApp == "":
		return fmt.Errorf("%w: storage.slots_app is empty", ErrInvalidConfig)
	}

	bindings := map[string][]string{
		"left":       c.Keys.Left,
		"right":      c.Keys.Right,
		"rotate_cw":  c.Keys.RotateCW,
		"rotate_ccw": c.Keys.RotateCCW,
		"drop":       c.Keys.Drop,
		"hold":       c.Keys.Hold,
		"pause":      c.Keys.Pause,
		"save":       c.Keys.Save,
		"restart":    c.Keys.Restart,
		"quit":       c.Keys.Quit,
	}
	owner := make(map[string]string)
	for action, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalidConfig, action)
		}
		for _, k := range keys {
			if prev, ok := owner[k]; ok && prev != action {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, k, prev, action)
			}
			owner[k] = action
		}
	}
	return nil
}

// DifficultyPreset represents a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
// Unknown presets start at level 0.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 10
	default:
		return 0
	}
}

// ApplyPreset sets the starting level from a preset. An empty preset
// keeps the configured level.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Board.StartLevel = StartLevelForPreset(preset)
}
