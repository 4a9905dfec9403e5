// Package combat implements the combatant model and single-exchange attack
// resolution for Tarnished boss encounters.
package combat

// Kind distinguishes player combatants from bosses.
type Kind int

const (
	KindPlayer Kind = iota
	KindBoss
)

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Combatant holds the mutable combat stats shared by players and bosses.
//
// Invariant: 0 <= Health <= MaxHealth; Attack >= 0; Armor >= 0.
type Combatant struct {
	ID        string
	Kind      Kind
	Name      string
	MaxHealth int
	Health    int
	// Attack is the base damage scalar; a d10 selects the percentage dealt.
	Attack int
	// Armor is the defense threshold; attack rolls strictly below it miss.
	Armor int
}

// IsPlayer reports whether this combatant is a player character.
func (c *Combatant) IsPlayer() bool { return c.Kind == KindPlayer }

// IsDead reports whether the combatant has no health left. Exactly zero is dead.
func (c *Combatant) IsDead() bool { return c.Health <= 0 }

// ApplyDamage reduces Health by amount, flooring at zero.
// Precondition: amount must be >= 0.
// Postcondition: Health == max(0, before-amount).
func (c *Combatant) ApplyDamage(amount int) {
	c.Health -= amount
	if c.Health < 0 {
		c.Health = 0
	}
}

// Restore heals the combatant to MaxHealth.
//
// Postcondition: Health == MaxHealth.
func (c *Combatant) Restore() {
	c.Health = c.MaxHealth
}

// Clamp re-establishes the combatant invariants after a stat recompute.
//
// Postcondition: Attack >= 0, Armor >= 0, 0 <= Health <= MaxHealth.
func (c *Combatant) Clamp() {
	if c.Attack < 0 {
		c.Attack = 0
	}
	if c.Armor < 0 {
		c.Armor = 0
	}
	if c.MaxHealth < 0 {
		c.MaxHealth = 0
	}
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	if c.Health < 0 {
		c.Health = 0
	}
}

// DamageFor returns ceil(attack * d10 / 10) using integer arithmetic.
//
// Precondition: attack >= 0; 1 <= d10 <= 10.
// Postcondition: 0 <= result <= attack.
func DamageFor(attack, d10 int) int {
	return (attack*d10 + 9) / 10
}

// Hits reports whether an attack roll lands against armor. A roll equal to
// armor hits.
func Hits(roll, armor int) bool {
	return roll >= armor
}
