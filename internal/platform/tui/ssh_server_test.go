package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/savegame"
)

func testServer() *SSHServer {
	cfg := DefaultSSHServerConfig()
	cfg.Game.Board.Rows = 16
	cfg.Game.Board.Cols = 8
	cfg.Game.Board.StartLevel = 3
	return &SSHServer{config: cfg, logger: log.New(io.Discard)}
}

func TestSessionGameUsesConfiguredBoard(t *testing.T) {
	g, err := testServer().newGame(1)
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	if g.Rows() != 16 || g.Cols() != 8 || g.Level() != 3 {
		t.Errorf("game is %dx%d level %d, expected 16x8 level 3", g.Rows(), g.Cols(), g.Level())
	}
}

func TestSessionSlotNamedAfterUser(t *testing.T) {
	s := testServer()
	for _, user := range []string{"ada", "bob_2"} {
		if got := s.sessionOptions(user).SlotName; got != user {
			t.Errorf("SlotName for %q = %q", user, got)
		}
	}
}

func TestSessionSlotsDistinctForOddUsers(t *testing.T) {
	s := testServer()
	seen := map[string]string{}
	for _, user := range []string{"not a slot", "also not/one", "", "élodie"} {
		opts := s.sessionOptions(user)
		if opts.Player != user {
			t.Errorf("Player = %q, expected %q", opts.Player, user)
		}
		slot := opts.SlotName
		if slot == "quick" || !savegame.ValidSlotName(slot) {
			t.Errorf("user %q got slot %q", user, slot)
		}
		if other, dup := seen[slot]; dup {
			t.Errorf("users %q and %q share slot %q", other, user, slot)
		}
		seen[slot] = user

		if again := s.sessionOptions(user).SlotName; again != slot {
			t.Errorf("slot for %q not stable: %q then %q", user, slot, again)
		}
	}
}
