package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMoveFor(t *testing.T) {
	km := NewKeyMap(config.DefaultTetrisConfig().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		move tetris.Move
		ok   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, tetris.MoveLeft, true},
		{"a", runeKey('a'), tetris.MoveLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, tetris.MoveRight, true},
		{"up rotates", tea.KeyMsg{Type: tea.KeyUp}, tetris.MoveRotateClockwise, true},
		{"z rotates back", runeKey('z'), tetris.MoveRotateCounterClockwise, true},
		{"s drops", runeKey('s'), tetris.MoveDrop, true},
		{"c holds", runeKey('c'), tetris.MoveHold, true},
		{"pause is not a move", runeKey('p'), tetris.MoveNone, false},
		{"unbound", runeKey('m'), tetris.MoveNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			move, ok := km.MoveFor(tc.msg)
			if move != tc.move || ok != tc.ok {
				t.Errorf("MoveFor(%q) = %v, %v; expected %v, %v", tc.msg.String(), move, ok, tc.move, tc.ok)
			}
		})
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	keys := config.DefaultTetrisConfig().Keys
	keys.Hold = []string{"h"}
	km := NewKeyMap(keys)

	if move, _ := km.MoveFor(runeKey('h')); move != tetris.MoveHold {
		t.Errorf("rebound hold key gave %v", move)
	}
	if _, ok := km.MoveFor(runeKey('c')); ok {
		t.Error("old hold key should no longer match")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.DefaultTetrisConfig().Keys)

	if got := km.Drop.Help().Key; got != "space/s" {
		t.Errorf("drop help key = %q", got)
	}
	if got := km.Left.Help().Key; got != "←/a" {
		t.Errorf("left help key = %q", got)
	}
	if len(km.ShortHelp()) == 0 || len(km.FullHelp()) != 3 {
		t.Error("help groups missing")
	}
}
