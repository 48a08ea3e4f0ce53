package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/savegame"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// maxQueuedMoves bounds the moves buffered between ticks. The engine
// consumes one move per tick.
const maxQueuedMoves = 4

// statusTicks is how long a status message stays on screen.
const statusTicks = 200

// Options wires a Model to its surroundings. Every field is optional.
type Options struct {
	Config   config.TetrisConfig
	Store    *storage.Store // nil disables high scores
	Slots    *savegame.Slots
	SlotName string // slot written by the save key
	SavePath string // file written by the save key, in addition to the slot
	Player   string
	Logger   *log.Logger

	// NewSource supplies the piece source for each restarted game.
	// Defaults to a time-seeded source.
	NewSource func() tetris.PieceSource
}

// Model is the Bubble Tea model for one tetris session.
type Model struct {
	game   *tetris.Game
	opts   Options
	keys   KeyMap
	help   help.Model
	screen *core.Screen
	logger *log.Logger

	queue      []tetris.Move
	paused     bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	highScore  int

	status     string
	statusLeft int
}

// NewModel creates a model driving game. A zero Options.Config is
// replaced by the defaults.
func NewModel(game *tetris.Game, opts Options) Model {
	if opts.Config.Timing.TickMS <= 0 {
		opts.Config = config.DefaultTetrisConfig()
	}
	if opts.SlotName == "" {
		opts.SlotName = "quick"
	}
	if opts.NewSource == nil {
		opts.NewSource = timeSource
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		opts:   opts,
		keys:   NewKeyMap(opts.Config.Keys),
		help:   help.New(),
		screen: core.NewScreen(ScreenSize(game.Rows(), game.Cols())),
		logger: logger,
	}
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(); err == nil {
			m.highScore = high
		} else {
			logger.Warn("could not read high score", "error", err)
		}
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "player", m.opts.Player, "rows", m.game.Rows(), "cols", m.game.Cols())
	return tickCmd(m.opts.Config.Timing.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "points", m.game.Points())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if !m.game.Over() {
			m.paused = !m.paused
			m.queue = m.queue[:0]
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.game.Over() {
			m.restart()
		}
		return m, nil
	}

	if m.paused || m.game.Over() {
		return m, nil
	}
	if mv, ok := m.keys.MoveFor(msg); ok && len(m.queue) < maxQueuedMoves {
		m.queue = append(m.queue, mv)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Config.Timing.TickInterval())

	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}
	if m.paused || m.game.Over() {
		return m, next
	}

	mv := tetris.MoveNone
	if len(m.queue) > 0 {
		mv = m.queue[0]
		m.queue = m.queue[1:]
	}

	if !m.game.Tick(mv) {
		m.finish()
	}
	return m, next
}

// finish records the score of a game that just ended, once.
func (m *Model) finish() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.queue = m.queue[:0]

	m.logger.Info("game over", "points", m.game.Points(), "lines", m.game.Lines(), "level", m.game.Level())
	if m.opts.Store == nil || m.game.Points() == 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.opts.Player, m.game.Points(), m.game.Lines(), m.game.Level()); err != nil {
		m.logger.Error("could not save score", "error", err)
		m.setStatus("score not saved")
		return
	}
	if m.game.Points() > m.highScore {
		m.highScore = m.game.Points()
		m.setStatus("new high score!")
	}
}

func (m *Model) restart() {
	cfg := m.opts.Config.Board
	g, err := tetris.NewAtLevel(m.game.Rows(), m.game.Cols(), cfg.StartLevel, m.opts.NewSource())
	if err != nil {
		m.logger.Error("could not restart", "error", err)
		return
	}
	m.game = g
	m.scoreSaved = false
	m.paused = false
	m.queue = m.queue[:0]
	m.logger.Info("game restarted")
}

// save writes the game to the slot and, when the session was resumed from
// a file, back to that file.
func (m *Model) save() {
	if m.game.Over() {
		m.setStatus("game over, nothing to save")
		return
	}

	var saved []string
	if m.opts.Slots.Available() {
		if err := m.opts.Slots.Save(m.opts.SlotName, m.game); err != nil {
			m.logger.Error("slot save failed", "slot", m.opts.SlotName, "error", err)
			m.setStatus("save failed")
			return
		}
		saved = append(saved, "slot "+m.opts.SlotName)
	}
	if m.opts.SavePath != "" {
		if err := savegame.SaveFile(m.opts.SavePath, m.game); err != nil {
			m.logger.Error("file save failed", "path", m.opts.SavePath, "error", err)
			m.setStatus("save failed")
			return
		}
		saved = append(saved, m.opts.SavePath)
	}

	if len(saved) == 0 {
		m.setStatus("saving unavailable")
		return
	}
	m.logger.Info("game saved", "to", saved)
	m.setStatus("saved to " + strings.Join(saved, ", "))
}

func timeSource() tetris.PieceSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// Game returns the game currently being played.
func (m Model) Game() *tetris.Game {
	return m.game
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.game.Snapshot(), hud{HighScore: m.highScore, Paused: m.paused})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	switch {
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	case m.game.Over():
		b.WriteString(statusStyle.Render(fmt.Sprintf("final score %d, press %s to play again", m.game.Points(), m.keys.Restart.Help().Key)))
	}
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for game and blocks until the player
// quits.
func Run(game *tetris.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
