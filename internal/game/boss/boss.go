// Package boss defines boss categories, their combat profiles, and the
// weighted catalog bosses are spawned from.
package boss

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/tarnished/internal/game/combat"
)

// Category is the tier of an encounter.
type Category string

const (
	CategoryTutorial Category = "tutorial"
	CategoryField    Category = "field"
	CategoryMini     Category = "mini"
	CategoryMain     Category = "main"
)

// Categories lists every category in campaign order.
var Categories = []Category{CategoryTutorial, CategoryField, CategoryMini, CategoryMain}

// Valid reports whether c names a category.
func (c Category) Valid() bool {
	_, ok := profiles[c]
	return ok
}

// Profile holds the fixed combat numbers of a category.
type Profile struct {
	Attack int
	Armor  int
	// Divisor scales raw catalog health down to encounter health.
	Divisor int
	// DropChance is the luck range of a loot draw. Unused by main bosses.
	DropChance int
}

var profiles = map[Category]Profile{
	CategoryTutorial: {Attack: 10, Armor: 7, Divisor: 2, DropChance: 10},
	CategoryField:    {Attack: 15, Armor: 9, Divisor: 4, DropChance: 5},
	CategoryMini:     {Attack: 20, Armor: 11, Divisor: 6, DropChance: 1},
	CategoryMain:     {Attack: 25, Armor: 13, Divisor: 8},
}

// ProfileFor returns the profile of c.
func ProfileFor(c Category) (Profile, bool) {
	p, ok := profiles[c]
	return p, ok
}

// Boss is the single opponent of an encounter.
type Boss struct {
	combat.Combatant

	Category Category
	// Reward is the runes credited to every party member on victory.
	Reward int
	// DropChance is copied from the category profile, possibly overridden.
	DropChance int
}

// Fighter returns the combatant view used by the encounter engine.
func (b *Boss) Fighter() *combat.Combatant { return &b.Combatant }

// Lootable reports whether this boss drops an item on defeat. Every category
// but main does, whatever its drop chance.
func (b *Boss) Lootable() bool { return b.Category != CategoryMain }

// ScaleHealth returns ceil(raw / divisor).
//
// Precondition: raw >= 1; divisor >= 1.
func ScaleHealth(raw, divisor int) int {
	return (raw + divisor - 1) / divisor
}

const (
	tutorialName   = "Soldier of Godrick"
	tutorialHealth = 384
	tutorialRunes  = 400
)

// Tutorial returns a fresh copy of the fixed tutorial boss.
func Tutorial() *Boss {
	return newBoss(CategoryTutorial, Entry{Name: tutorialName, Health: tutorialHealth, Runes: tutorialRunes}, profiles[CategoryTutorial])
}

func newBoss(cat Category, e Entry, p Profile) *Boss {
	hp := ScaleHealth(e.Health, p.Divisor)
	return &Boss{
		Combatant: combat.Combatant{
			ID:        uuid.New().String(),
			Kind:      combat.KindBoss,
			Name:      e.Name,
			MaxHealth: hp,
			Health:    hp,
			Attack:    p.Attack,
			Armor:     p.Armor,
		},
		Category:   cat,
		Reward:     e.Runes,
		DropChance: p.DropChance,
	}
}

// String returns a short label for logs.
func (b *Boss) String() string {
	return fmt.Sprintf("%s (%s, %d/%d)", b.Name, b.Category, b.Health, b.MaxHealth)
}
