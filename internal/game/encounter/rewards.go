package encounter

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// Reward is what a victory yields.
type Reward struct {
	// Runes is credited to every member, fallen or not.
	Runes int
	// Loot is nil when the boss category has no loot or no catalog is set.
	Loot *inventory.Drop
}

// GrantRewards credits the boss reward to every party member and, for
// lootable bosses, draws a loot drop. It succeeds at most once.
//
// Postcondition: returns ErrNotVictorious outside StateVictory and
// ErrRewardsGranted on any call after the first success; neither changes
// any state.
func (e *Encounter) GrantRewards() (Reward, error) {
	if e.state != StateVictory {
		return Reward{}, ErrNotVictorious
	}
	if e.granted {
		return Reward{}, ErrRewardsGranted
	}
	e.granted = true

	r := Reward{Runes: e.boss.Reward}
	for _, m := range e.party {
		m.AddRunes(r.Runes)
	}
	if e.boss.Lootable() && e.loot != nil && e.lootSrc != nil {
		drop := e.loot.Drop(e.boss.DropChance, e.lootSrc)
		r.Loot = &drop
	}

	fields := []zap.Field{zap.Int("runes", r.Runes)}
	if r.Loot != nil {
		fields = append(fields, zap.String("loot", r.Loot.Item.Name), zap.Bool("upgraded", r.Loot.Upgraded()))
	}
	e.logger.Info("rewards granted", fields...)
	return r, nil
}

// RewardsGranted reports whether GrantRewards has succeeded.
func (e *Encounter) RewardsGranted() bool { return e.granted }
