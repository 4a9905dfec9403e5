package console_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/tarnished/internal/frontend/console"
	"github.com/cory-johannsen/tarnished/internal/game/character"
)

func testClasses() []*character.Class {
	samurai := testClass()
	samurai.ID, samurai.Name = "samurai", "Samurai"
	return []*character.Class{testClass(), samurai}
}

func TestSetupParty_Two(t *testing.T) {
	term, out := newTestTerm("5\n2\n1\nVyke\nsamurai\nNepheli\n")
	party, err := console.SetupParty(context.Background(), term, testClasses(), testCatalog(t))
	require.NoError(t, err)
	require.Len(t, party, 2)
	assert.Equal(t, "Vyke", party[0].Name)
	assert.Equal(t, "Vagabond", party[0].Class)
	assert.Equal(t, "Nepheli", party[1].Name)
	assert.Equal(t, "Samurai", party[1].Class)
	assert.Contains(t, out.String(), "Enter the number of players. Max 3: ")
	assert.Contains(t, out.String(), "3. Quit")
}

func TestSetupParty_Quit(t *testing.T) {
	term, _ := newTestTerm("1\n3\n")
	_, err := console.SetupParty(context.Background(), term, testClasses(), testCatalog(t))
	assert.ErrorIs(t, err, console.ErrQuit)
}

func TestSetupParty_Cancelled(t *testing.T) {
	term, _ := newTestTerm("1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := console.SetupParty(ctx, term, testClasses(), testCatalog(t))
	assert.ErrorIs(t, err, context.Canceled)
}
