package encounter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/combat"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// Result is the terminal outcome of Run.
type Result struct {
	EncounterID string
	State       State
	Rounds      int
	// Runes is the reward credited to each member; zero on defeat.
	Runes int
	// Loot is the item the boss dropped, or nil.
	Loot *inventory.Drop
}

// Victory reports whether the party won.
func (r Result) Victory() bool { return r.State == StateVictory }

// Run plays the encounter to a terminal state. On victory it grants rewards
// before returning.
//
// Precondition: Run has not been called before on e.
// Postcondition: Result.State is StateVictory or StateDefeat, unless ctx is
// cancelled first, in which case ctx.Err() is returned and the state is left
// where the cancellation found it.
func (e *Encounter) Run(ctx context.Context) (Result, error) {
	if e.state != StateIntroduction {
		return Result{}, fmt.Errorf("encounter %s already run (state %s)", e.id, e.state)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	e.logger.Info("encounter started",
		zap.Int("party_size", len(e.party)),
		zap.Int("boss_health", e.boss.Health),
	)
	e.emit(ctx, Event{Type: EventIntroduction})
	e.state = StateRoundLoop

	for !e.state.Terminal() {
		if err := ctx.Err(); err != nil {
			e.logger.Info("encounter cancelled", zap.Int("round", e.round))
			return e.result(), err
		}
		if err := e.playRound(ctx); err != nil {
			e.logger.Info("encounter cancelled", zap.Int("round", e.round))
			return e.result(), err
		}
	}

	if e.state == StateDefeat {
		e.logger.Info("encounter lost", zap.Int("round", e.round))
		e.emit(ctx, Event{Type: EventDefeat})
		return e.result(), nil
	}

	e.logger.Info("encounter won", zap.Int("round", e.round))
	e.emit(ctx, Event{Type: EventVictory})
	reward, err := e.GrantRewards()
	if err != nil {
		return e.result(), err
	}
	e.emit(ctx, Event{Type: EventRewardGranted, Runes: reward.Runes})
	if reward.Loot != nil {
		e.emit(ctx, Event{Type: EventLootDropped, Loot: reward.Loot})
	}
	res := e.result()
	res.Runes = reward.Runes
	res.Loot = reward.Loot
	return res, nil
}

// playRound gives every living member, in order, one attack followed by the
// boss's counter-attack. It stops as soon as the boss or the host falls.
func (e *Encounter) playRound(ctx context.Context) error {
	e.round++
	e.emit(ctx, Event{Type: EventRoundStarted})

	host := e.Host()
	for _, m := range e.party {
		if m.IsDead() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		hit := combat.ResolveAttack(m.Fighter(), e.boss.Fighter(), e.roller)
		e.emit(ctx, Event{Type: EventAttackResolved, Attack: &hit, Member: m})
		if e.boss.IsDead() {
			e.state = StateVictory
			return nil
		}

		counter := combat.ResolveAttack(e.boss.Fighter(), m.Fighter(), e.roller)
		e.emit(ctx, Event{Type: EventAttackResolved, Attack: &counter, Member: m})
		if m.IsDead() {
			e.logger.Debug("party member fallen", zap.String("member", m.Name), zap.Int("round", e.round))
			e.emit(ctx, Event{Type: EventMemberFallen, Member: m})
		}
		if host.IsDead() {
			e.state = StateDefeat
			return nil
		}
	}
	return nil
}

func (e *Encounter) result() Result {
	return Result{
		EncounterID: e.id,
		State:       e.state,
		Rounds:      e.round,
	}
}

func (e *Encounter) emit(ctx context.Context, ev Event) {
	ev.EncounterID = e.id
	ev.Round = e.round
	ev.Boss = e.boss
	ev.Party = e.party
	if e.narrator != nil {
		ev.Narrative = e.narrator.Narrate(ctx, ev)
	}
	for _, o := range e.observers {
		o.OnEvent(ctx, ev)
	}
}

// Alive returns the members with health remaining, in turn order.
func (e *Encounter) Alive() []*character.Character {
	var alive []*character.Character
	for _, m := range e.party {
		if !m.IsDead() {
			alive = append(alive, m)
		}
	}
	return alive
}
