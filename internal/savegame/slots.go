package savegame

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	// ErrNoSlot is returned when loading a slot that was never saved, or
	// when slot storage is unavailable.
	ErrNoSlot = errors.New("savegame: no such slot")

	// ErrBadSlotName is returned for names that cannot be used as keys.
	ErrBadSlotName = errors.New("savegame: invalid slot name")
)

const slotsObject = "slots"

var slotNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Slots stores games under short names in the per-user data directory.
// A nil *Slots is usable: Save does nothing and Load reports ErrNoSlot.
type Slots struct {
	m *gdata.Manager
}

// OpenSlots opens slot storage for the given application name.
func OpenSlots(appName string) (*Slots, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot open slot storage: %w", err)
	}
	return &Slots{m: m}, nil
}

// ValidSlotName reports whether name can be used as a slot name.
func ValidSlotName(name string) bool {
	return slotNameRe.MatchString(name)
}

// SlotNameFor maps an arbitrary user name to a slot name. Valid names are
// used as is; anything else becomes "user-" plus a hash of the name, so
// distinct users never share a slot.
func SlotNameFor(user string) string {
	if ValidSlotName(user) {
		return user
	}
	sum := sha256.Sum256([]byte(user))
	return "user-" + hex.EncodeToString(sum[:8])
}

// Available reports whether saves actually persist.
func (s *Slots) Available() bool {
	return s != nil && s.m != nil
}

// Save stores the game under name, replacing any previous save.
func (s *Slots) Save(name string, g *tetris.Game) error {
	if !s.Available() {
		return nil
	}
	if !ValidSlotName(name) {
		return fmt.Errorf("%w: %q", ErrBadSlotName, name)
	}
	data, err := g.MarshalBinary()
	if err != nil {
		return fmt.Errorf("savegame: encode: %w", err)
	}
	if err := s.m.SaveObjectProp(slotsObject, name, data); err != nil {
		return fmt.Errorf("savegame: cannot save slot %s: %w", name, err)
	}
	return nil
}

// Load restores the game stored under name.
func (s *Slots) Load(name string, src tetris.PieceSource) (*tetris.Game, error) {
	if !ValidSlotName(name) {
		return nil, fmt.Errorf("%w: %q", ErrBadSlotName, name)
	}
	if !s.Exists(name) {
		return nil, fmt.Errorf("%w: %s", ErrNoSlot, name)
	}
	data, err := s.m.LoadObjectProp(slotsObject, name)
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot load slot %s: %w", name, err)
	}
	g, err := tetris.Load(data, src)
	if err != nil {
		return nil, fmt.Errorf("savegame: slot %s: %w", name, err)
	}
	return g, nil
}

// Exists reports whether a save is stored under name.
func (s *Slots) Exists(name string) bool {
	if !s.Available() || !ValidSlotName(name) {
		return false
	}
	return s.m.ObjectPropExists(slotsObject, name)
}
