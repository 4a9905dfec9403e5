// Package encounter runs a single boss fight: the introduction, the round
// loop, and the one-time victory rewards.
package encounter

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tarnished/internal/game/boss"
	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/combat"
	"github.com/cory-johannsen/tarnished/internal/game/dice"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

const (
	// MinParty is the smallest allowed party.
	MinParty = 1
	// MaxParty is the largest allowed party: the host and two summons.
	MaxParty = 3
)

var (
	// ErrInvalidPartySize is returned by New when the party has fewer than
	// MinParty or more than MaxParty members.
	ErrInvalidPartySize = errors.New("invalid party size")
	// ErrRewardsGranted is returned when rewards were already granted.
	ErrRewardsGranted = errors.New("rewards already granted")
	// ErrNotVictorious is returned when rewards are requested before victory.
	ErrNotVictorious = errors.New("encounter not won")
)

// State is the encounter lifecycle position.
type State int

const (
	StateIntroduction State = iota
	StateRoundLoop
	StateVictory
	StateDefeat
)

// String returns a human-readable state label.
func (s State) String() string {
	switch s {
	case StateIntroduction:
		return "introduction"
	case StateRoundLoop:
		return "round_loop"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further rounds can run.
func (s State) Terminal() bool { return s == StateVictory || s == StateDefeat }

// Option configures an Encounter.
type Option func(*Encounter)

// WithRoller sets the dice used for attack and damage rolls.
func WithRoller(r combat.Roller) Option {
	return func(e *Encounter) { e.roller = r }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Encounter) { e.logger = l }
}

// WithObserver registers an observer. Observers are called in registration order.
func WithObserver(o Observer) Option {
	return func(e *Encounter) { e.observers = append(e.observers, o) }
}

// WithNarrator sets the source of flavor text attached to events.
func WithNarrator(n Narrator) Option {
	return func(e *Encounter) { e.narrator = n }
}

// WithLoot enables loot drops from cat, sampled with src.
func WithLoot(cat *inventory.Catalog, src inventory.Source) Option {
	return func(e *Encounter) {
		e.loot = cat
		e.lootSrc = src
	}
}

// Encounter owns the state of one boss fight.
type Encounter struct {
	id        string
	party     []*character.Character
	boss      *boss.Boss
	state     State
	round     int
	granted   bool
	roller    combat.Roller
	loot      *inventory.Catalog
	lootSrc   inventory.Source
	observers []Observer
	narrator  Narrator
	logger    *zap.Logger
}

// New validates the party and constructs an Encounter in the Introduction state.
// The first party member is the host.
//
// Precondition: party members and b must be non-nil.
// Postcondition: returns ErrInvalidPartySize when len(party) is outside
// [MinParty, MaxParty].
func New(party []*character.Character, b *boss.Boss, opts ...Option) (*Encounter, error) {
	if len(party) < MinParty || len(party) > MaxParty {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidPartySize, len(party), MinParty, MaxParty)
	}
	for i, m := range party {
		if m == nil {
			return nil, fmt.Errorf("party member %d must not be nil", i)
		}
	}
	if b == nil {
		return nil, errors.New("boss must not be nil")
	}
	e := &Encounter{
		id:    uuid.New().String(),
		party: append([]*character.Character(nil), party...),
		boss:  b,
		state: StateIntroduction,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.roller == nil {
		e.roller = dice.NewLoggedRoller(dice.NewCryptoSource(), e.logger)
	}
	if e.lootSrc == nil {
		if src, ok := e.roller.(inventory.Source); ok {
			e.lootSrc = src
		}
	}
	e.logger = e.logger.With(
		zap.String("encounter_id", e.id),
		zap.String("boss", b.Name),
		zap.String("category", string(b.Category)),
	)
	return e, nil
}

// ID returns the encounter's correlation ID.
func (e *Encounter) ID() string { return e.id }

// State returns the current lifecycle state.
func (e *Encounter) State() State { return e.state }

// Round returns the number of rounds started so far.
func (e *Encounter) Round() int { return e.round }

// Host returns the first party member.
func (e *Encounter) Host() *character.Character { return e.party[0] }

// Party returns the party in turn order.
func (e *Encounter) Party() []*character.Character { return e.party }

// Boss returns the opponent.
func (e *Encounter) Boss() *boss.Boss { return e.boss }
