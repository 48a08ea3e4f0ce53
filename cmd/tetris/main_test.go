package main

import (
	"io"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/savegame"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// isolate points HOME at a temp dir and resets global flags.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagSeed, flagConfig, flagDBPath, flagSlot = 0, "", "", ""
	flagLogLevel = "info"
	t.Cleanup(func() {
		flagSeed, flagConfig, flagDBPath, flagSlot = 0, "", "", ""
		flagLogLevel = "info"
	})
}

func TestLoadConfigPresets(t *testing.T) {
	isolate(t)

	tests := []struct {
		preset string
		level  int
		ok     bool
	}{
		{"", 0, true},
		{"easy", 0, true},
		{"normal", 5, true},
		{"hard", 10, true},
		{"insane", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			cfg, err := loadConfig(tc.preset)
			if (err == nil) != tc.ok {
				t.Fatalf("loadConfig(%q) error = %v", tc.preset, err)
			}
			if tc.ok && cfg.Board.StartLevel != tc.level {
				t.Errorf("start level = %d, expected %d", cfg.Board.StartLevel, tc.level)
			}
		})
	}
}

func TestDBPathPrecedence(t *testing.T) {
	isolate(t)
	cfg := config.DefaultTetrisConfig()

	if got := dbPath(cfg); got != defaultDBPath {
		t.Errorf("dbPath() = %q, expected default", got)
	}
	cfg.Storage.ScoresDB = "/from/config.db"
	if got := dbPath(cfg); got != "/from/config.db" {
		t.Errorf("dbPath() = %q, expected config value", got)
	}
	flagDBPath = "/from/flag.db"
	if got := dbPath(cfg); got != "/from/flag.db" {
		t.Errorf("dbPath() = %q, expected flag value", got)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	isolate(t)
	flagLogLevel = "loud"
	if _, err := newLogger(io.Discard); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestStartGameFromMissingFile(t *testing.T) {
	isolate(t)
	flagSeed = 3
	cfg := config.DefaultTetrisConfig()

	g, err := startGame(cfg, nil, filepath.Join(t.TempDir(), "none.tet"), newSources()(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("startGame: %v", err)
	}
	if g.Rows() != cfg.Board.Rows || g.Cols() != cfg.Board.Cols || g.Points() != 0 {
		t.Errorf("expected a fresh %dx%d game", cfg.Board.Rows, cfg.Board.Cols)
	}
}

func TestStartGameResumesFile(t *testing.T) {
	isolate(t)
	flagSeed = 5
	cfg := config.DefaultTetrisConfig()

	saved, err := tetris.New(12, 8, newSources()())
	if err != nil {
		t.Fatalf("tetris.New: %v", err)
	}
	saved.Tick(tetris.MoveDrop)
	path := filepath.Join(t.TempDir(), "game.tet")
	if err := savegame.SaveFile(path, saved); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	g, err := startGame(cfg, nil, path, newSources()(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("startGame: %v", err)
	}
	if g.Rows() != 12 || g.Cols() != 8 {
		t.Errorf("resumed game is %dx%d, expected 12x8", g.Rows(), g.Cols())
	}
	if !reflect.DeepEqual(g.Snapshot(), saved.Snapshot()) {
		t.Error("resumed game differs from the saved one")
	}
}

func TestStartGameEmptySlot(t *testing.T) {
	isolate(t)
	flagSlot = "nothing-here"

	g, err := startGame(config.DefaultTetrisConfig(), nil, "", newSources()(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("startGame: %v", err)
	}
	if g.Over() {
		t.Error("fresh game should not be over")
	}
}

func TestSeededSessionIsReproducible(t *testing.T) {
	isolate(t)
	flagSeed = 11

	a, b := newSources(), newSources()
	for game := range 3 {
		ga, err := tetris.New(22, 10, a())
		if err != nil {
			t.Fatalf("tetris.New: %v", err)
		}
		gb, err := tetris.New(22, 10, b())
		if err != nil {
			t.Fatalf("tetris.New: %v", err)
		}
		for range 200 {
			ga.Tick(tetris.MoveDrop)
			gb.Tick(tetris.MoveDrop)
		}
		if !reflect.DeepEqual(ga.Snapshot(), gb.Snapshot()) {
			t.Errorf("game %d differs between runs with the same seed", game)
		}
	}
}
