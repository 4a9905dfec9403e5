package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/tarnished/internal/game/combat"
	"github.com/cory-johannsen/tarnished/internal/game/content"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// Build constructs a new Character from a name and a class, resolving hand
// items through cat. Health starts at MaxHealth.
//
// Precondition: name must be non-empty; class and cat must be non-nil.
// Postcondition: Returns a Character at full health, or an error wrapping
// content.ErrNotFound when an item is missing from the catalog.
func Build(name string, class *Class, cat *inventory.Catalog) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if class == nil {
		return nil, errors.New("class must not be nil")
	}
	if cat == nil {
		return nil, errors.New("item catalog must not be nil")
	}

	stats := make(map[Stat]int, len(Stats))
	for _, s := range Stats {
		stats[s] = class.Stats[s]
	}

	equip := inventory.NewEquipment()
	for _, hand := range inventory.Hands {
		itemName := class.Equipment[string(hand)]
		if itemName == "" {
			continue
		}
		item, err := cat.MustResolve(itemName)
		if err != nil {
			return nil, fmt.Errorf("class %q %s: %w", class.ID, hand, err)
		}
		if hand == inventory.HandRight && item.IsShield() {
			return nil, content.Malformed("class %q: shield %q cannot be held in the right hand", class.ID, item.Name)
		}
		equip.Hands.Equip(hand, item)
	}
	for _, slot := range inventory.ArmorSlots {
		if piece := class.Equipment[string(slot)]; piece != "" {
			equip.Armor[slot] = piece
		}
	}

	c := &Character{
		Combatant: combat.Combatant{
			ID:   newID(),
			Kind: combat.KindPlayer,
			Name: name,
		},
		Class:     class.Name,
		Level:     class.Level,
		Stats:     stats,
		Equipment: equip,
	}
	c.RecomputeDerivedStats()
	c.Health = c.MaxHealth
	return c, nil
}
