package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/encounter"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// ErrQuit is returned when the player picks Quit during setup.
var ErrQuit = errors.New("player quit")

const quitOption = "Quit"

// SetupParty asks for a party size, then a class and name for each member,
// and builds the characters. The first member built is the host.
//
// Precondition: classes must be non-empty and cat non-nil.
// Postcondition: on nil error len(party) is in [encounter.MinParty, encounter.MaxParty].
func SetupParty(ctx context.Context, term *Term, classes []*character.Class, cat *inventory.Catalog) ([]*character.Character, error) {
	size, err := term.Int(fmt.Sprintf("Enter the number of players. Max %d: ", encounter.MaxParty), encounter.MinParty, encounter.MaxParty)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(classes)+1)
	for _, c := range classes {
		labels = append(labels, c.Name)
	}
	labels = append(labels, quitOption)

	party := make([]*character.Character, 0, size)
	for i := 0; i < size; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_ = term.WriteLine(term.Palette.Colorf(BrightCyan, "\nPlayer %d", i+1))
		idx, err := term.Menu("Choose a class:", labels)
		if err != nil {
			return nil, err
		}
		if idx == len(classes) {
			return nil, ErrQuit
		}
		name, err := term.Text("Enter a name for your character: ")
		if err != nil {
			return nil, err
		}
		c, err := character.Build(name, classes[idx], cat)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", classes[idx].Name, err)
		}
		party = append(party, c)
	}
	return party, nil
}
