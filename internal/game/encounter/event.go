package encounter

import (
	"context"

	"github.com/cory-johannsen/tarnished/internal/game/boss"
	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/combat"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// EventType identifies what an Event reports.
type EventType int

const (
	EventIntroduction EventType = iota
	EventRoundStarted
	EventAttackResolved
	EventMemberFallen
	EventVictory
	EventDefeat
	EventRewardGranted
	EventLootDropped
)

// String returns the hook name for the event type.
func (t EventType) String() string {
	switch t {
	case EventIntroduction:
		return "introduction"
	case EventRoundStarted:
		return "round_started"
	case EventAttackResolved:
		return "attack"
	case EventMemberFallen:
		return "member_fallen"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	case EventRewardGranted:
		return "reward"
	case EventLootDropped:
		return "loot"
	default:
		return "unknown"
	}
}

// Event records one step of an encounter. Fields not relevant to Type are zero.
type Event struct {
	Type        EventType
	EncounterID string
	Round       int
	Boss        *boss.Boss
	Party       []*character.Character
	// Attack is set for EventAttackResolved.
	Attack *combat.AttackResult
	// Member is the party member an attack or fall concerns.
	Member *character.Character
	// Runes is set for EventRewardGranted.
	Runes int
	// Loot is set for EventLootDropped.
	Loot *inventory.Drop
	// Narrative is flavor text supplied by the Narrator, if any.
	Narrative string
}

// Observer receives encounter events in order. Observers run on the
// encounter's goroutine and must not retain the Event's pointers past the
// encounter.
type Observer interface {
	OnEvent(ctx context.Context, ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, ev Event)

// OnEvent calls f.
func (f ObserverFunc) OnEvent(ctx context.Context, ev Event) { f(ctx, ev) }

// Narrator supplies optional flavor text for an event.
type Narrator interface {
	Narrate(ctx context.Context, ev Event) string
}
