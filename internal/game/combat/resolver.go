package combat

// AttackResult holds the outcome of a single attack phase.
type AttackResult struct {
	AttackerID   string
	AttackerName string
	DefenderID   string
	DefenderName string
	// AttackRoll is the d20 drawn for the hit check.
	AttackRoll int
	// Armor is the defender armor the roll was checked against.
	Armor int
	Hit   bool
	// DamageRoll is the d10 drawn on a hit; zero on a miss.
	DamageRoll int
	Damage     int
	// DefenderHealth is the defender's health after the phase.
	DefenderHealth int
}

// Roller is the subset of dice.Roller used by the resolver.
type Roller interface {
	RollD20(advantage, disadvantage bool) int
	RollD10() int
}

// ResolveAttack performs one attack phase of attacker against defender.
// Attack roll: plain d20 vs defender armor; below armor misses.
// Damage: ceil(attacker.Attack * d10 / 10), applied to defender.
//
// Precondition: attacker, defender, and r must be non-nil.
// Postcondition: defender.Health changes only on a hit; attacker is never mutated.
func ResolveAttack(attacker, defender *Combatant, r Roller) AttackResult {
	res := AttackResult{
		AttackerID:   attacker.ID,
		AttackerName: attacker.Name,
		DefenderID:   defender.ID,
		DefenderName: defender.Name,
		AttackRoll:   r.RollD20(false, false),
		Armor:        defender.Armor,
	}
	if !Hits(res.AttackRoll, defender.Armor) {
		res.DefenderHealth = defender.Health
		return res
	}

	res.Hit = true
	res.DamageRoll = r.RollD10()
	res.Damage = DamageFor(attacker.Attack, res.DamageRoll)
	defender.ApplyDamage(res.Damage)
	res.DefenderHealth = defender.Health
	return res
}
