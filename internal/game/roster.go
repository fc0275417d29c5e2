package game

import (
	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

// Character is one selectable sprite variant.
type Character struct {
	ID       string
	Name     string
	Sprite   string
	Unlocked bool
}

// Roster is the fixed, ordered list of selectable characters.
type Roster []Character

// NewRoster builds a roster from configuration. Ids listed in unlocked are
// marked unlocked in addition to the ones the configuration unlocks.
func NewRoster(chars []config.Character, unlocked []string) Roster {
	extra := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		extra[id] = true
	}

	r := make(Roster, len(chars))
	for i, c := range chars {
		r[i] = Character{
			ID:       c.ID,
			Name:     c.Name,
			Sprite:   c.Sprite,
			Unlocked: c.Unlocked || extra[c.ID],
		}
	}
	return r
}

// Len returns the number of characters.
func (r Roster) Len() int {
	return len(r)
}

// Clamp restricts an index to [0, Len()-1]. There is no wraparound.
func (r Roster) Clamp(i int) int {
	if len(r) == 0 {
		return 0
	}
	return core.Clamp(i, 0, len(r)-1)
}

// At returns the character at a clamped index.
func (r Roster) At(i int) Character {
	if len(r) == 0 {
		return Character{}
	}
	return r[r.Clamp(i)]
}

// IndexOf returns the position of the character with the given id, or -1.
func (r Roster) IndexOf(id string) int {
	for i, c := range r {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	copy(out, r)
	return out
}
