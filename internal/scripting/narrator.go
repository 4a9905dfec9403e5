package scripting

import (
	"context"

	"github.com/cory-johannsen/tarnished/internal/game/encounter"
)

// Narrator dispatches encounter events to Lua hooks named "on_" plus the
// event type (on_introduction, on_attack, on_victory, ...), using the VM of
// the boss's category with the global VM as fallback.
type Narrator struct {
	mgr *Manager
}

// NewNarrator returns a Narrator backed by mgr.
//
// Precondition: mgr must be non-nil.
func NewNarrator(mgr *Manager) *Narrator {
	return &Narrator{mgr: mgr}
}

// HookName returns the Lua function called for t.
func HookName(t encounter.EventType) string {
	return "on_" + t.String()
}

// Narrate implements encounter.Narrator.
func (n *Narrator) Narrate(ctx context.Context, ev encounter.Event) string {
	if ctx.Err() != nil || ev.Boss == nil {
		return ""
	}
	return n.mgr.CallEvent(string(ev.Boss.Category), HookName(ev.Type), EventFields(ev))
}

// EventFields flattens ev into the table handed to Lua.
func EventFields(ev encounter.Event) Fields {
	f := Fields{
		"event":        ev.Type.String(),
		"encounter_id": ev.EncounterID,
		"round":        ev.Round,
		"party_size":   len(ev.Party),
	}
	if b := ev.Boss; b != nil {
		f["boss"] = b.Name
		f["category"] = string(b.Category)
		f["boss_health"] = b.Health
		f["boss_max_health"] = b.MaxHealth
	}
	if m := ev.Member; m != nil {
		f["member"] = m.Name
		f["member_health"] = m.Health
		f["member_max_health"] = m.MaxHealth
	}
	if a := ev.Attack; a != nil {
		f["attacker"] = a.AttackerName
		f["defender"] = a.DefenderName
		f["roll"] = a.AttackRoll
		f["armor"] = a.Armor
		f["hit"] = a.Hit
		f["damage"] = a.Damage
		f["defender_health"] = a.DefenderHealth
		f["boss_attacking"] = ev.Boss != nil && a.AttackerID == ev.Boss.ID
	}
	if ev.Runes > 0 {
		f["runes"] = ev.Runes
	}
	if l := ev.Loot; l != nil && l.Item != nil {
		f["loot"] = l.Item.Name
		f["loot_upgraded"] = l.Upgraded()
	}
	return f
}

var _ encounter.Narrator = (*Narrator)(nil)
