package inventory

// Hand identifies a weapon-holding hand.
type Hand string

const (
	// HandRight is the main hand; its weapon contributes full attack.
	HandRight Hand = "Right Hand"
	// HandLeft is the off hand; weapons contribute half attack, shields add armor.
	HandLeft Hand = "Left Hand"
)

// Hands lists both hands in display order.
var Hands = []Hand{HandRight, HandLeft}

// Valid reports whether h names a hand.
func (h Hand) Valid() bool { return h == HandRight || h == HandLeft }

// Loadout tracks the items held in each hand.
// Invariant: each Hand holds at most one Item.
type Loadout struct {
	hands map[Hand]*Item
}

// NewLoadout returns an empty Loadout.
func NewLoadout() *Loadout {
	return &Loadout{hands: make(map[Hand]*Item)}
}

// Equip places item into hand. Shields always go to the left hand regardless
// of the requested hand.
//
// Precondition: item must not be nil; hand must be valid.
// Postcondition: returns the hand the item actually occupies.
func (l *Loadout) Equip(hand Hand, item *Item) Hand {
	if item.IsShield() {
		hand = HandLeft
	}
	l.hands[hand] = item
	return hand
}

// Unequip empties hand.
func (l *Loadout) Unequip(hand Hand) {
	delete(l.hands, hand)
}

// Held returns the item in hand, or nil if empty.
func (l *Loadout) Held(hand Hand) *Item {
	return l.hands[hand]
}

// AttackIn returns the listed attack of the item in hand, or zero if empty.
func (l *Loadout) AttackIn(hand Hand) int {
	if it := l.hands[hand]; it != nil {
		return it.Attack
	}
	return 0
}
