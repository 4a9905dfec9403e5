package console

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/tarnished/internal/game/boss"
	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/encounter"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// Rule is the horizontal separator between blocks of output.
var Rule = strings.Repeat("-", 30)

// RenderStats formats a character sheet: class, level, attributes, derived
// stats and equipment.
func RenderStats(p Palette, c *character.Character) string {
	var b strings.Builder
	b.WriteString(Rule + "\n")
	b.WriteString(p.Colorf(BrightWhite, "Name: %s", c.Name) + "\n\n")
	fmt.Fprintf(&b, "Class: %s\n", c.Class)
	fmt.Fprintf(&b, "Level: %d\n\n", c.Level)
	for _, s := range character.Stats {
		fmt.Fprintf(&b, "%-7s%d\n", string(s)+":", c.Stats[s])
	}
	fmt.Fprintf(&b, "\nHP: %d/%d\n", c.Health, c.MaxHealth)
	fmt.Fprintf(&b, "Attack: %d\n", c.Attack)
	fmt.Fprintf(&b, "Armor: %d\n", c.Armor)
	fmt.Fprintf(&b, "Runes: %d\n", c.Runes)
	b.WriteString(Rule + "\n")
	for _, h := range inventory.Hands {
		name := ""
		if it := c.Equipment.Hands.Held(h); it != nil {
			name = it.Name
		}
		fmt.Fprintf(&b, "%-12s%s\n", string(h)+":", name)
	}
	for _, s := range inventory.ArmorSlots {
		fmt.Fprintf(&b, "%-12s%s\n", string(s)+":", c.Equipment.Armor[s])
	}
	b.WriteString(Rule)
	return b.String()
}

// RenderHealth formats a name and current health.
func RenderHealth(p Palette, name string, health, maxHealth int) string {
	color := Green
	switch {
	case health == 0:
		color = Red
	case health*4 <= maxHealth:
		color = Yellow
	}
	return fmt.Sprintf("\n%s\nHP: %s", p.Colorize(BrightWhite, name), p.Colorf(color, "%d/%d", health, maxHealth))
}

// RenderEvent formats an encounter event, or returns "" for events with no
// output. Narrative text, when present, follows the event's own lines.
func RenderEvent(p Palette, ev encounter.Event) string {
	var lines []string
	switch ev.Type {
	case encounter.EventIntroduction:
		lines = append(lines,
			p.Colorize(Bold+BrightRed, "\nA CHALLENGER APPROACHES\n"),
			fmt.Sprintf("Begin fight VS %s", p.Colorize(BrightYellow, ev.Boss.Name)),
		)
	case encounter.EventRoundStarted:
		lines = append(lines, "\n"+Rule+p.Colorf(Dim, " round %d", ev.Round))
		for _, m := range ev.Party {
			lines = append(lines, RenderHealth(p, m.Name, m.Health, m.MaxHealth))
		}
		lines = append(lines, RenderHealth(p, ev.Boss.Name, ev.Boss.Health, ev.Boss.MaxHealth))
	case encounter.EventAttackResolved:
		lines = append(lines, renderAttack(p, ev))
	case encounter.EventMemberFallen:
		lines = append(lines, p.Colorf(Red, "\n%s has fallen.", ev.Member.Name))
	case encounter.EventVictory:
		lines = append(lines, p.Colorize(Bold+BrightYellow, "\nENEMY FELLED\n"))
	case encounter.EventDefeat:
		lines = append(lines, p.Colorize(Bold+Red, "\nYOU DIED\n"))
	case encounter.EventRewardGranted:
		lines = append(lines, p.Colorf(BrightCyan, "You gained %d runes.", ev.Runes))
		for _, m := range ev.Party {
			lines = append(lines, fmt.Sprintf("%s currently has %d runes.", m.Name, m.Runes))
		}
	case encounter.EventLootDropped:
		label := ev.Loot.Item.Name
		if ev.Loot.Upgraded() {
			label = p.Colorize(BrightYellow, label)
		}
		lines = append(lines, fmt.Sprintf("\n%s dropped %s!", ev.Boss.Name, label))
	}
	if ev.Narrative != "" {
		lines = append(lines, p.Colorize(Italic+Magenta, ev.Narrative))
	}
	return strings.Join(lines, "\n")
}

func renderAttack(p Palette, ev encounter.Event) string {
	a := ev.Attack
	var b strings.Builder
	if a.AttackerID == ev.Boss.ID {
		b.WriteString(p.Colorize(Red, "\nBoss attack phase."))
	} else {
		b.WriteString(p.Colorf(Cyan, "\n%s attack phase.", a.AttackerName))
	}
	fmt.Fprintf(&b, "\nRolled %d against armor %d.", a.AttackRoll, a.Armor)
	if !a.Hit {
		b.WriteString("\nAttack roll failed!")
		return b.String()
	}
	b.WriteString("\nAttack roll success!")
	fmt.Fprintf(&b, "\nHit %s for %s damage!", a.DefenderName, p.Colorf(BrightRed, "%d", a.Damage))
	return b.String()
}

// RenderBossCategory returns the banner shown before a stage.
func RenderBossCategory(p Palette, c boss.Category) string {
	var title string
	switch c {
	case boss.CategoryTutorial:
		title = "The Chapel of Anticipation"
	case boss.CategoryField:
		title = "Field Boss"
	case boss.CategoryMini:
		title = "Mini Boss"
	case boss.CategoryMain:
		title = "Main Boss"
	default:
		title = string(c)
	}
	return p.Colorf(BrightCyan, "\n=== %s ===", title)
}
