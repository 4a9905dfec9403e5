package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

func TestTypeSet_KindOf(t *testing.T) {
	ts := inventory.DefaultTypeSet()

	k, ok := ts.KindOf("Katana")
	assert.True(t, ok)
	assert.Equal(t, inventory.KindWeapon, k)

	k, ok = ts.KindOf("Great Shield")
	assert.True(t, ok)
	assert.Equal(t, inventory.KindShield, k)

	_, ok = ts.KindOf("Talisman")
	assert.False(t, ok)
}

func TestTypeSet_Injected(t *testing.T) {
	ts := inventory.NewTypeSet([]string{"Stick"}, []string{"Lid"})
	k, ok := ts.KindOf("Lid")
	assert.True(t, ok)
	assert.Equal(t, inventory.KindShield, k)
	_, ok = ts.KindOf("Katana")
	assert.False(t, ok)
}

func TestItem_Validate(t *testing.T) {
	ok := inventory.Item{Name: "Uchigatana", Type: "Katana", Attack: 115}
	assert.NoError(t, ok.Validate())

	bad := inventory.Item{Attack: -1}
	err := bad.Validate()
	assert.ErrorContains(t, err, "name must not be empty")
	assert.ErrorContains(t, err, "type must not be empty")
	assert.ErrorContains(t, err, "attack must be >= 0")
}
