// Package character defines the player character model: class builds,
// derived combat stats, equipment changes, resting and leveling.
package character

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/tarnished/internal/game/combat"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// Stat names one of the eight attributes.
type Stat string

const (
	Vigor        Stat = "Vig"
	Mind         Stat = "Mnd"
	Endurance    Stat = "End"
	Strength     Stat = "Str"
	Dexterity    Stat = "Dex"
	Intelligence Stat = "Int"
	Faith        Stat = "Fth"
	Arcane       Stat = "Arc"
)

// Stats lists every attribute in display order.
var Stats = []Stat{Vigor, Mind, Endurance, Strength, Dexterity, Intelligence, Faith, Arcane}

// Valid reports whether s names an attribute.
func (s Stat) Valid() bool {
	for _, v := range Stats {
		if v == s {
			return true
		}
	}
	return false
}

const (
	// BaseArmor is the armor of a character without a shield.
	BaseArmor = 11
	// ShieldArmor is the armor of a character with a shield in the left hand.
	ShieldArmor = 13
	// HealthPerVigor converts Vigor into maximum health.
	HealthPerVigor = 10
)

var (
	// ErrInsufficientRunes is returned when a level-up cannot be paid for.
	ErrInsufficientRunes = errors.New("insufficient runes")
	// ErrUnknownStat is returned when a level-up names no attribute.
	ErrUnknownStat = errors.New("unknown stat")
)

// Character is a party member. The embedded Combatant carries the combat
// stats the encounter engine mutates.
type Character struct {
	combat.Combatant

	Class     string
	Level     int
	Stats     map[Stat]int
	Equipment *inventory.Equipment
	Runes     int
}

// Fighter returns the combatant view used by the encounter engine.
func (c *Character) Fighter() *combat.Combatant { return &c.Combatant }

// HandAttack returns the listed attack of the item held in hand.
func (c *Character) HandAttack(hand inventory.Hand) int {
	return c.Equipment.Hands.AttackIn(hand)
}

// RecomputeDerivedStats re-derives MaxHealth, Attack and Armor from stats and
// the items in hand:
//
//	MaxHealth = Vig * 10
//	Attack    = right weapon + left weapon / 2 + Str + Dex
//	Armor     = 13 with a shield in the left hand, 11 otherwise
//
// Postcondition: combatant invariants hold.
func (c *Character) RecomputeDerivedStats() {
	c.MaxHealth = c.Stats[Vigor] * HealthPerVigor

	attack := c.Stats[Strength] + c.Stats[Dexterity]
	if right := c.Equipment.Hands.Held(inventory.HandRight); right != nil && !right.IsShield() {
		attack += right.Attack
	}
	armor := BaseArmor
	if left := c.Equipment.Hands.Held(inventory.HandLeft); left != nil {
		if left.IsShield() {
			armor = ShieldArmor
		} else {
			attack += left.Attack / 2
		}
	}
	c.Attack = attack
	c.Armor = armor
	c.Clamp()
}

// Equip places item in hand (shields always go to the left hand) and
// recomputes derived stats.
//
// Precondition: item must not be nil.
// Postcondition: returns the hand the item occupies.
func (c *Character) Equip(hand inventory.Hand, item *inventory.Item) (inventory.Hand, error) {
	if item == nil {
		return "", errors.New("character: Equip: item must not be nil")
	}
	if !hand.Valid() && !item.IsShield() {
		return "", fmt.Errorf("character: Equip: unknown hand %q", hand)
	}
	got := c.Equipment.Hands.Equip(hand, item)
	c.RecomputeDerivedStats()
	return got, nil
}

// Rest heals the character to full health.
func (c *Character) Rest() {
	c.Restore()
}

// AddRunes credits n runes.
func (c *Character) AddRunes(n int) {
	c.Runes += n
}

// LevelCost returns the rune cost of leaving level:
//
//	x    = max(((level + 81) - 92) * 0.02, 0)
//	cost = int((x + 0.1) * (level + 81)^2) + 1
//
// Precondition: level >= 1.
func LevelCost(level int) int {
	x := float64(level+81-92) * 0.02
	if x < 0 {
		x = 0
	}
	base := float64(level + 81)
	return int((x+0.1)*(base*base)) + 1
}

// NextLevelCost returns the runes needed for the character's next level.
func (c *Character) NextLevelCost() int {
	return LevelCost(c.Level)
}

// LevelUp spends runes to raise stat by one and recomputes derived stats.
//
// Postcondition: on error nothing changes; on success Level is incremented,
// Runes reduced by the previous NextLevelCost, and Stats[stat] incremented.
func (c *Character) LevelUp(stat Stat) error {
	if !stat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStat, stat)
	}
	cost := c.NextLevelCost()
	if c.Runes < cost {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientRunes, cost, c.Runes)
	}
	c.Stats[stat]++
	c.Runes -= cost
	c.Level++
	c.RecomputeDerivedStats()
	return nil
}

func newID() string { return uuid.New().String() }
