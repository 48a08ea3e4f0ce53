// tetris is a falling-blocks game for the terminal.
//
// Usage:
//
//	tetris [savefile]        - Play, resuming from savefile if it exists
//	tetris scores            - Show high scores
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible piece order
//	--config <path>     - Use a custom config YAML
//	--db <path>         - Set database path (default: ~/.tetris/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file while playing
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

const defaultDBPath = "~/.tetris/scores.db"

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris [savefile]",
	Short: "Tetris in your terminal",
	Long: `Play tetris in your terminal.

With a savefile argument the game is resumed from that file when it
exists, and ctrl+s writes back to it. Without one a fresh game starts.

Examples:
  tetris
  tetris ~/games/evening.tet
  tetris --slot monday
  tetris --difficulty hard --seed 42
  tetris scores
  tetris serve --ssh :2222`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.tetris/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	rootCmd.Flags().StringVar(&flagSlot, "slot", "", "Resume from and save to a named slot")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with high scores (default $USER)")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the program logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	}), nil
}

// loadConfig reads the configuration and applies the difficulty preset.
func loadConfig(preset string) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	switch p := config.DifficultyPreset(preset); p {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
		config.ApplyPreset(&cfg, p)
	default:
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", preset)
	}
	return cfg, nil
}

// dbPath picks the scores database: --db, then the config file, then the
// default location.
func dbPath(cfg config.TetrisConfig) string {
	switch {
	case flagDBPath != "":
		return flagDBPath
	case cfg.Storage.ScoresDB != "":
		return cfg.Storage.ScoresDB
	default:
		return defaultDBPath
	}
}

// seed returns --seed, or a time based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newSources returns a piece source factory for a session. Each call
// yields the source for the next game; with --seed the whole session,
// restarts included, is reproducible.
func newSources() func() tetris.PieceSource {
	seeds := rand.New(rand.NewSource(seed()))
	return func() tetris.PieceSource {
		return rand.New(rand.NewSource(seeds.Int63()))
	}
}
