package console

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tarnished/internal/game/campaign"
	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/encounter"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithPhaseDelay sets the pause after each round and attack.
func WithPhaseDelay(d time.Duration) PresenterOption {
	return func(p *Presenter) { p.phaseDelay = d }
}

// WithRestDelay sets the pause after resting.
func WithRestDelay(d time.Duration) PresenterOption {
	return func(p *Presenter) { p.restDelay = d }
}

// WithPause makes the presenter wait for ENTER before each stage.
func WithPause(on bool) PresenterOption {
	return func(p *Presenter) { p.pause = on }
}

// WithPresenterLogger sets the logger.
func WithPresenterLogger(l *zap.Logger) PresenterOption {
	return func(p *Presenter) { p.logger = l }
}

// Presenter renders encounter events to a Term and answers campaign prompts
// from it.
type Presenter struct {
	term       *Term
	phaseDelay time.Duration
	restDelay  time.Duration
	pause      bool
	logger     *zap.Logger
	resting    map[string]bool
}

// NewPresenter creates a Presenter writing to term. Delays default to zero.
//
// Precondition: term must be non-nil.
func NewPresenter(term *Term, opts ...PresenterOption) *Presenter {
	p := &Presenter{
		term:    term,
		logger:  zap.NewNop(),
		resting: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OnEvent implements encounter.Observer.
func (p *Presenter) OnEvent(ctx context.Context, ev encounter.Event) {
	text := RenderEvent(p.term.Palette, ev)
	if text == "" {
		return
	}
	if err := p.term.WriteLine(text); err != nil {
		p.logger.Warn("writing event", zap.String("event", ev.Type.String()), zap.Error(err))
	}
	switch ev.Type {
	case encounter.EventRoundStarted, encounter.EventAttackResolved:
		p.sleep(ctx, p.phaseDelay)
	}
}

// OfferLoot implements campaign.UI.
func (p *Presenter) OfferLoot(_ context.Context, m *character.Character, drop inventory.Drop) (campaign.LootChoice, error) {
	pal := p.term.Palette
	item := drop.Item
	_ = p.term.WriteLine(fmt.Sprintf("\n%s\n%s", Rule, pal.Colorize(BrightWhite, m.Name)))
	_ = p.term.WriteLine(fmt.Sprintf("Right hand attack: %d", m.HandAttack(inventory.HandRight)))
	_ = p.term.WriteLine(fmt.Sprintf("Left hand attack: %d", m.HandAttack(inventory.HandLeft)))
	_ = p.term.WriteLine(fmt.Sprintf("%s attack: %d", pal.Colorize(BrightYellow, item.Name), item.Attack))
	_ = p.term.WriteLine(pal.Colorize(Dim, "Weapons increase attack while shields increase your armor."))

	accept, err := p.term.YesNo("Would you like to equip the new weapon? Y/N: ")
	if err != nil || !accept {
		return campaign.LootChoice{}, err
	}
	if item.IsShield() {
		return campaign.LootChoice{Accept: true, Hand: inventory.HandLeft}, nil
	}
	labels := make([]string, len(inventory.Hands))
	for i, h := range inventory.Hands {
		labels[i] = string(h)
	}
	idx, err := p.term.Menu("Select a hand to equip the weapon:", labels)
	if err != nil {
		return campaign.LootChoice{}, err
	}
	return campaign.LootChoice{Accept: true, Hand: inventory.Hands[idx]}, nil
}

// ChooseRestAction implements campaign.UI.
func (p *Presenter) ChooseRestAction(_ context.Context, m *character.Character) (campaign.RestAction, error) {
	if !p.resting[m.ID] {
		p.resting[m.ID] = true
		_ = p.term.WriteLine(p.term.Palette.Colorf(BrightYellow, "\n%s rests at a site of grace.", m.Name))
	}
	labels := make([]string, len(campaign.RestActions))
	for i, a := range campaign.RestActions {
		labels[i] = a.String()
	}
	idx, err := p.term.Menu("Pick an action:", labels)
	if err != nil {
		return 0, err
	}
	return campaign.RestActions[idx], nil
}

// ChooseStat implements campaign.UI.
func (p *Presenter) ChooseStat(_ context.Context, m *character.Character) (character.Stat, error) {
	labels := make([]string, len(character.Stats))
	for i, s := range character.Stats {
		labels[i] = fmt.Sprintf("%s (%d)", s, m.Stats[s])
	}
	idx, err := p.term.Menu("Select a stat to increase:", labels)
	if err != nil {
		return "", err
	}
	return character.Stats[idx], nil
}

// ShowStats implements campaign.UI.
func (p *Presenter) ShowStats(_ context.Context, m *character.Character) error {
	if err := p.term.WriteLine(RenderStats(p.term.Palette, m)); err != nil {
		return err
	}
	if !p.pause {
		return nil
	}
	return p.term.WaitEnter("Press 'ENTER' to continue...")
}

// Notify implements campaign.UI.
func (p *Presenter) Notify(ctx context.Context, n campaign.Notice) {
	pal := p.term.Palette
	switch n.Kind {
	case campaign.NoticeStage:
		clear(p.resting)
		_ = p.term.WriteLine(RenderBossCategory(pal, n.Stage))
		if p.pause {
			if err := p.term.WaitEnter("Press 'ENTER' to continue..."); err != nil {
				p.logger.Debug("pause", zap.Error(err))
			}
		}
	case campaign.NoticeEquipped:
		_ = p.term.WriteLine(fmt.Sprintf("%s equipped in %s", pal.Colorize(BrightYellow, n.Item.Name), n.Hand))
		_ = p.term.WriteLine("Updating stats...")
		_ = p.term.WriteLine(fmt.Sprintf("Attack: %d  Armor: %d", n.Member.Attack, n.Member.Armor))
	case campaign.NoticeInsufficientRunes:
		_ = p.term.WriteLine(pal.Colorize(Red, "Insufficient runes to level up."))
		_ = p.term.WriteLine(fmt.Sprintf("Need %d runes to level up.", n.Cost))
		_ = p.term.WriteLine(fmt.Sprintf("Current runes: %d", n.Member.Runes))
	case campaign.NoticeLeveledUp:
		m := n.Member
		_ = p.term.WriteLine(pal.Colorf(BrightGreen, "%s increased from %d to %d", n.Stat, m.Stats[n.Stat]-1, m.Stats[n.Stat]))
		_ = p.term.WriteLine(fmt.Sprintf("Level: %d", m.Level))
		_ = p.term.WriteLine(fmt.Sprintf("Current runes: %d", m.Runes))
	case campaign.NoticeRested:
		_ = p.term.WriteLine("Rest...")
		_ = p.term.WriteLine(pal.Colorize(BrightCyan, "Fully healed and preparing for next battle..."))
		p.sleep(ctx, p.restDelay)
	case campaign.NoticeComplete:
		_ = p.term.WriteLine(pal.Colorize(Bold+BrightYellow, "\nThe Elden Ring lies within reach. Your journey is complete."))
	}
}

func (p *Presenter) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
