package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/savegame"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagSlot       string
	flagDifficulty string
	flagPlayer     string
)

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogOutput()
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	slots, err := savegame.OpenSlots(cfg.Storage.SlotsApp)
	if err != nil {
		logger.Warn("save slots unavailable", "error", err)
	}

	var savePath string
	if len(args) == 1 {
		savePath = args[0]
	}

	sources := newSources()
	game, err := startGame(cfg, slots, savePath, sources(), logger)
	if err != nil {
		return err
	}

	warnIfTooSmall(game)

	// Open score storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := tui.Options{
		Config:   cfg,
		Store:    store,
		Slots:    slots,
		SlotName: flagSlot,
		SavePath: savePath,
		Player:   playerName(),
		Logger:   logger,

		NewSource: sources,
	}
	runErr := tui.Run(game, opts)

	// Close store before reporting
	if store != nil {
		store.Close()
	}
	return runErr
}

// startGame resumes from the slot or save file when one is given and
// exists, and otherwise starts a fresh game.
func startGame(cfg config.TetrisConfig, slots *savegame.Slots, savePath string, src tetris.PieceSource, logger *log.Logger) (*tetris.Game, error) {
	if flagSlot != "" {
		g, err := slots.Load(flagSlot, src)
		switch {
		case err == nil:
			logger.Info("resumed", "slot", flagSlot)
			return g, nil
		case errors.Is(err, savegame.ErrNoSlot):
			logger.Info("slot empty, starting new game", "slot", flagSlot)
		default:
			return nil, err
		}
	} else if savePath != "" {
		g, err := savegame.LoadFile(savePath, src)
		switch {
		case err == nil:
			logger.Info("resumed", "file", savePath)
			return g, nil
		case errors.Is(err, os.ErrNotExist):
			logger.Info("no save file, starting new game", "file", savePath)
		default:
			return nil, err
		}
	}

	return tetris.NewAtLevel(cfg.Board.Rows, cfg.Board.Cols, cfg.Board.StartLevel, src)
}

// openLogOutput returns where play-time logs go. The alt screen owns the
// terminal, so without --log-file they are dropped.
func openLogOutput() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func warnIfTooSmall(g *tetris.Game) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	needW, needH := tui.ScreenSize(g.Rows(), g.Cols())
	needH += 2 // status and help lines
	if w < needW || h < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
	}
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER")
}
