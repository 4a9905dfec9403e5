// Package inventory provides the item catalog, weapon/shield classification,
// hand equipment, and loot drops for Tarnished.
package inventory

import (
	"errors"
	"fmt"
)

// Kind separates items that add attack from items that add armor.
type Kind string

const (
	KindWeapon Kind = "weapon"
	KindShield Kind = "shield"
)

// Tier selects the standard or fully upgraded item pool.
type Tier string

const (
	TierStandard Tier = "standard"
	TierUpgraded Tier = "upgraded"
)

// DefaultWeaponTypes lists the item types that count as weapons.
var DefaultWeaponTypes = []string{
	"Dagger", "Straight Sword", "Greatsword", "Colossal Sword", "Thrusting Sword",
	"Heavy Thrusting Sword", "Curved Sword", "Curved Greatsword", "Katana",
	"Twinblade", "Axe", "Greataxe", "Hammer", "Flail", "Great Hammer",
	"Colossal Weapon", "Spear", "Great Spear", "Halberd", "Reaper", "Whip", "Fist",
	"Claw", "Light Bow", "Bow", "Greatbow", "Crossbow", "Ballista",
	"Glintstone Staff", "Sacred Seal", "Torch",
}

// DefaultShieldTypes lists the item types that count as shields.
var DefaultShieldTypes = []string{"Small Shield", "Medium Shield", "Great Shield"}

// TypeSet classifies item types as weapons or shields.
type TypeSet struct {
	weapons map[string]bool
	shields map[string]bool
}

// NewTypeSet builds a TypeSet from the given type names.
//
// Precondition: no name appears in both lists.
func NewTypeSet(weapons, shields []string) TypeSet {
	ts := TypeSet{weapons: make(map[string]bool), shields: make(map[string]bool)}
	for _, w := range weapons {
		ts.weapons[w] = true
	}
	for _, s := range shields {
		ts.shields[s] = true
	}
	return ts
}

// DefaultTypeSet returns the TypeSet built from the default type lists.
func DefaultTypeSet() TypeSet {
	return NewTypeSet(DefaultWeaponTypes, DefaultShieldTypes)
}

// KindOf returns the Kind for an item type, or false when the type is unknown.
func (ts TypeSet) KindOf(itemType string) (Kind, bool) {
	switch {
	case ts.weapons[itemType]:
		return KindWeapon, true
	case ts.shields[itemType]:
		return KindShield, true
	default:
		return "", false
	}
}

// Item is a weapon or shield definition loaded from a catalog file.
type Item struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Attack int    `yaml:"attack"`
	// Kind and Tier are assigned by the catalog on load.
	Kind Kind `yaml:"-"`
	Tier Tier `yaml:"-"`
}

// IsShield reports whether the item is a shield.
func (i *Item) IsShield() bool { return i.Kind == KindShield }

// Validate checks the raw record fields.
//
// Postcondition: returns nil iff Name and Type are non-empty and Attack >= 0.
func (i *Item) Validate() error {
	var errs []error
	if i.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if i.Type == "" {
		errs = append(errs, errors.New("type must not be empty"))
	}
	if i.Attack < 0 {
		errs = append(errs, fmt.Errorf("attack must be >= 0, got %d", i.Attack))
	}
	return errors.Join(errs...)
}
