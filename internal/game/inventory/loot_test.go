package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tarnished/internal/game/dice"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// fixedSrc returns val for every Intn call, clamped into range.
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(n int) int {
	if f.val >= n {
		return n - 1
	}
	return f.val
}

func TestDrop_ChanceOneAlwaysUpgraded(t *testing.T) {
	cat := loadTestCatalog(t)
	src := dice.NewCryptoSource()
	for i := 0; i < 200; i++ {
		d := cat.Drop(1, src)
		assert.Zero(t, d.Luck)
		assert.True(t, d.Upgraded())
	}
}

func TestDrop_ClampsNonPositiveChance(t *testing.T) {
	cat := loadTestCatalog(t)
	d := cat.Drop(0, dice.NewCryptoSource())
	assert.True(t, d.Upgraded())
	d = cat.Drop(-4, dice.NewCryptoSource())
	assert.True(t, d.Upgraded())
}

func TestDrop_NonZeroLuckIsStandard(t *testing.T) {
	cat := loadTestCatalog(t)
	d := cat.Drop(5, fixedSrc{val: 3})
	assert.Equal(t, 3, d.Luck)
	assert.Equal(t, inventory.TierStandard, d.Item.Tier)
	assert.NotEmpty(t, d.InstanceID)
}

func TestDrop_Property_TierFollowsLuck(t *testing.T) {
	cat := loadTestCatalog(t)
	rapid.Check(t, func(rt *rapid.T) {
		chance := rapid.IntRange(-3, 20).Draw(rt, "chance")
		d := cat.Drop(chance, dice.NewCryptoSource())
		assert.Less(rt, d.Luck, max(chance, 1))
		assert.Equal(rt, d.Luck == 0, d.Upgraded())
	})
}
