package campaign

import (
	"context"

	"github.com/cory-johannsen/tarnished/internal/game/boss"
	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// RestAction is a choice on the rest menu.
type RestAction int

const (
	RestShowStats RestAction = iota
	RestLevelUp
	RestRest
)

// RestActions lists the rest menu in display order.
var RestActions = []RestAction{RestShowStats, RestLevelUp, RestRest}

// String returns the menu label.
func (a RestAction) String() string {
	switch a {
	case RestShowStats:
		return "Show Stats"
	case RestLevelUp:
		return "Level Up"
	case RestRest:
		return "Rest"
	default:
		return "Unknown"
	}
}

// LootChoice is a member's answer to a loot offer.
type LootChoice struct {
	Accept bool
	// Hand is ignored for shields.
	Hand inventory.Hand
}

// NoticeKind identifies a Notice.
type NoticeKind int

const (
	NoticeStage NoticeKind = iota
	NoticeEquipped
	NoticeInsufficientRunes
	NoticeLeveledUp
	NoticeRested
	NoticeComplete
)

// Notice reports a campaign step that needs no answer.
type Notice struct {
	Kind   NoticeKind
	Stage  boss.Category
	Member *character.Character
	Item   *inventory.Item
	Hand   inventory.Hand
	Stat   character.Stat
	// Cost is the rune cost of the member's next level.
	Cost int
}

// UI is everything the campaign asks of the player.
type UI interface {
	OfferLoot(ctx context.Context, member *character.Character, drop inventory.Drop) (LootChoice, error)
	ChooseRestAction(ctx context.Context, member *character.Character) (RestAction, error)
	ChooseStat(ctx context.Context, member *character.Character) (character.Stat, error)
	ShowStats(ctx context.Context, member *character.Character) error
	Notify(ctx context.Context, n Notice)
}
