package inventory

import "github.com/google/uuid"

// Drop is an item a defeated boss leaves behind.
type Drop struct {
	InstanceID string
	Item       *Item
	// Luck is the draw that selected the pool; zero selects the upgraded pool.
	Luck int
}

// Upgraded reports whether the drop came from the upgraded pool.
func (d Drop) Upgraded() bool { return d.Item.Tier == TierUpgraded }

// Drop draws luck in [0, chance) and samples the upgraded pool on zero and the
// standard pool otherwise. chance is clamped to at least 1, so chance 1 always
// yields an upgraded item.
//
// Precondition: src must be non-nil.
func (c *Catalog) Drop(chance int, src Source) Drop {
	if chance < 1 {
		chance = 1
	}
	luck := src.Intn(chance)
	tier := TierStandard
	if luck == 0 {
		tier = TierUpgraded
	}
	return Drop{
		InstanceID: uuid.New().String(),
		Item:       c.Sample(tier, src),
		Luck:       luck,
	}
}
