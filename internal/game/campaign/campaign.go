// Package campaign plays a full run: the tutorial, field, mini and main boss
// encounters in order with a rest at a site of grace between each.
package campaign

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tarnished/internal/game/boss"
	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/combat"
	"github.com/cory-johannsen/tarnished/internal/game/encounter"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// Dice is the randomness a campaign needs: attack rolls plus catalog sampling.
type Dice interface {
	combat.Roller
	Intn(n int) int
}

// Option configures a Campaign.
type Option func(*Campaign)

// WithObserver forwards every encounter event to o.
func WithObserver(o encounter.Observer) Option {
	return func(c *Campaign) { c.observers = append(c.observers, o) }
}

// WithNarrator attaches flavor text to every encounter event.
func WithNarrator(n encounter.Narrator) Option {
	return func(c *Campaign) { c.narrator = n }
}

// WithStages replaces the default stage order.
func WithStages(stages ...boss.Category) Option {
	return func(c *Campaign) { c.stages = stages }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Campaign) { c.logger = l }
}

// Campaign runs encounters back to back for one party.
type Campaign struct {
	bosses    *boss.Catalog
	items     *inventory.Catalog
	dice      Dice
	ui        UI
	stages    []boss.Category
	observers []encounter.Observer
	narrator  encounter.Narrator
	logger    *zap.Logger
}

// New creates a Campaign.
//
// Precondition: bosses, items, dice and ui must be non-nil.
func New(bosses *boss.Catalog, items *inventory.Catalog, dice Dice, ui UI, opts ...Option) *Campaign {
	c := &Campaign{
		bosses: bosses,
		items:  items,
		dice:   dice,
		ui:     ui,
		stages: boss.Categories,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Outcome summarizes a run.
type Outcome struct {
	// Completed is true when every stage was won.
	Completed bool
	// Results holds one entry per encounter fought, in order.
	Results []encounter.Result
	// FinalStage is the stage of the last encounter fought.
	FinalStage boss.Category
}

// Run plays every stage with party. It stops at the first defeat, which is a
// normal Outcome rather than an error.
//
// Postcondition: returns an error only for an invalid party, a failed boss
// spawn, a UI failure, or context cancellation.
func (c *Campaign) Run(ctx context.Context, party []*character.Character) (Outcome, error) {
	if len(party) < encounter.MinParty || len(party) > encounter.MaxParty {
		return Outcome{}, fmt.Errorf("%w: %d", encounter.ErrInvalidPartySize, len(party))
	}
	var out Outcome
	for i, stage := range c.stages {
		out.FinalStage = stage
		c.ui.Notify(ctx, Notice{Kind: NoticeStage, Stage: stage})

		b, err := c.bosses.Spawn(stage, c.dice)
		if err != nil {
			return out, fmt.Errorf("spawning %s boss: %w", stage, err)
		}
		enc, err := encounter.New(party, b, c.encounterOptions()...)
		if err != nil {
			return out, err
		}
		res, err := enc.Run(ctx)
		if err != nil {
			return out, fmt.Errorf("%s encounter: %w", stage, err)
		}
		out.Results = append(out.Results, res)
		if !res.Victory() {
			c.logger.Info("campaign ended in defeat", zap.String("stage", string(stage)), zap.String("boss", b.Name))
			return out, nil
		}

		if res.Loot != nil {
			for _, m := range party {
				if err := c.offerLoot(ctx, m, *res.Loot); err != nil {
					return out, err
				}
			}
		}
		if i < len(c.stages)-1 {
			for _, m := range party {
				if err := c.Rest(ctx, m); err != nil {
					return out, err
				}
			}
		}
	}
	out.Completed = true
	c.logger.Info("campaign completed", zap.Int("encounters", len(out.Results)))
	c.ui.Notify(ctx, Notice{Kind: NoticeComplete, Stage: out.FinalStage})
	return out, nil
}

func (c *Campaign) encounterOptions() []encounter.Option {
	opts := []encounter.Option{
		encounter.WithRoller(c.dice),
		encounter.WithLoot(c.items, c.dice),
		encounter.WithLogger(c.logger),
	}
	for _, o := range c.observers {
		opts = append(opts, encounter.WithObserver(o))
	}
	if c.narrator != nil {
		opts = append(opts, encounter.WithNarrator(c.narrator))
	}
	return opts
}

func (c *Campaign) offerLoot(ctx context.Context, m *character.Character, drop inventory.Drop) error {
	choice, err := c.ui.OfferLoot(ctx, m, drop)
	if err != nil {
		return fmt.Errorf("loot offer for %s: %w", m.Name, err)
	}
	if !choice.Accept {
		return nil
	}
	hand, err := m.Equip(choice.Hand, drop.Item)
	if err != nil {
		return err
	}
	c.logger.Debug("loot equipped",
		zap.String("member", m.Name),
		zap.String("item", drop.Item.Name),
		zap.String("hand", string(hand)),
	)
	c.ui.Notify(ctx, Notice{Kind: NoticeEquipped, Member: m, Item: drop.Item, Hand: hand})
	return nil
}

// Rest runs the rest menu for m until Rest is chosen, then heals m to full.
//
// Postcondition: on nil error m.Health == m.MaxHealth.
func (c *Campaign) Rest(ctx context.Context, m *character.Character) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		action, err := c.ui.ChooseRestAction(ctx, m)
		if err != nil {
			return fmt.Errorf("rest menu for %s: %w", m.Name, err)
		}
		switch action {
		case RestShowStats:
			if err := c.ui.ShowStats(ctx, m); err != nil {
				return err
			}
		case RestLevelUp:
			if err := c.levelUp(ctx, m); err != nil {
				return err
			}
		case RestRest:
			m.Rest()
			c.ui.Notify(ctx, Notice{Kind: NoticeRested, Member: m})
			return nil
		default:
			return fmt.Errorf("unknown rest action %d", action)
		}
	}
}

func (c *Campaign) levelUp(ctx context.Context, m *character.Character) error {
	cost := m.NextLevelCost()
	if m.Runes < cost {
		c.ui.Notify(ctx, Notice{Kind: NoticeInsufficientRunes, Member: m, Cost: cost})
		return nil
	}
	stat, err := c.ui.ChooseStat(ctx, m)
	if err != nil {
		return fmt.Errorf("stat choice for %s: %w", m.Name, err)
	}
	if err := m.LevelUp(stat); err != nil {
		if errors.Is(err, character.ErrInsufficientRunes) {
			c.ui.Notify(ctx, Notice{Kind: NoticeInsufficientRunes, Member: m, Cost: cost})
			return nil
		}
		return err
	}
	c.logger.Info("level up",
		zap.String("member", m.Name),
		zap.String("stat", string(stat)),
		zap.Int("level", m.Level),
	)
	c.ui.Notify(ctx, Notice{Kind: NoticeLeveledUp, Member: m, Stat: stat, Cost: cost})
	return nil
}
