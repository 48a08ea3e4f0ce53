package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Drop      key.Binding
	Hold      key.Binding
	Pause     key.Binding
	Save      key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:      binding(cfg.Left, "left"),
		Right:     binding(cfg.Right, "right"),
		RotateCW:  binding(cfg.RotateCW, "rotate"),
		RotateCCW: binding(cfg.RotateCCW, "rotate ccw"),
		Drop:      binding(cfg.Drop, "drop"),
		Hold:      binding(cfg.Hold, "hold"),
		Pause:     binding(cfg.Pause, "pause"),
		Save:      binding(cfg.Save, "save"),
		Restart:   binding(cfg.Restart, "restart"),
		Quit:      binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = displayKey(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// displayKey returns the name shown in the help bar for a key string.
func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateCW, k.Drop, k.Hold, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RotateCW, k.RotateCCW},
		{k.Drop, k.Hold},
		{k.Pause, k.Save, k.Restart, k.Quit},
	}
}

// MoveFor translates a key press to an engine move.
func (k KeyMap) MoveFor(msg tea.KeyMsg) (tetris.Move, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return tetris.MoveLeft, true
	case key.Matches(msg, k.Right):
		return tetris.MoveRight, true
	case key.Matches(msg, k.RotateCW):
		return tetris.MoveRotateClockwise, true
	case key.Matches(msg, k.RotateCCW):
		return tetris.MoveRotateCounterClockwise, true
	case key.Matches(msg, k.Drop):
		return tetris.MoveDrop, true
	case key.Matches(msg, k.Hold):
		return tetris.MoveHold, true
	}
	return tetris.MoveNone, false
}
