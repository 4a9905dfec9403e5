package encounter_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/tarnished/internal/game/boss"
	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/combat"
	"github.com/cory-johannsen/tarnished/internal/game/dice"
	"github.com/cory-johannsen/tarnished/internal/game/encounter"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// scriptRoller replays fixed d20 and d10 sequences and fails the test when
// either runs out.
type scriptRoller struct {
	t   testing.TB
	d20 []int
	d10 []int
}

func (s *scriptRoller) RollD20(_, _ bool) int {
	s.t.Helper()
	if len(s.d20) == 0 {
		s.t.Fatalf("unexpected d20 roll")
	}
	v := s.d20[0]
	s.d20 = s.d20[1:]
	return v
}

func (s *scriptRoller) RollD10() int {
	s.t.Helper()
	if len(s.d10) == 0 {
		s.t.Fatalf("unexpected d10 roll")
	}
	v := s.d10[0]
	s.d10 = s.d10[1:]
	return v
}

type fixedSrc int

func (f fixedSrc) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func member(name string, hp, attack, armor int) *character.Character {
	return &character.Character{
		Combatant: combat.Combatant{
			ID:        name,
			Kind:      combat.KindPlayer,
			Name:      name,
			MaxHealth: hp,
			Health:    hp,
			Attack:    attack,
			Armor:     armor,
		},
		Level:     1,
		Stats:     map[character.Stat]int{},
		Equipment: inventory.NewEquipment(),
	}
}

func newBoss(cat boss.Category, hp, attack, armor, reward, dropChance int) *boss.Boss {
	return &boss.Boss{
		Combatant: combat.Combatant{
			ID:        "boss",
			Kind:      combat.KindBoss,
			Name:      "Margit",
			MaxHealth: hp,
			Health:    hp,
			Attack:    attack,
			Armor:     armor,
		},
		Category:   cat,
		Reward:     reward,
		DropChance: dropChance,
	}
}

func testCatalog(t *testing.T) *inventory.Catalog {
	t.Helper()
	cat, err := inventory.NewCatalog(inventory.DefaultTypeSet(),
		[]*inventory.Item{{Name: "Club", Type: "Hammer", Attack: 93}},
		[]*inventory.Item{{Name: "Brass Shield +25", Type: "Great Shield", Attack: 160}},
	)
	require.NoError(t, err)
	return cat
}

type recorder struct {
	events []encounter.Event
}

func (r *recorder) OnEvent(_ context.Context, ev encounter.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) types() []encounter.EventType {
	out := make([]encounter.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func (r *recorder) attacks() []combat.AttackResult {
	var out []combat.AttackResult
	for _, ev := range r.events {
		if ev.Type == encounter.EventAttackResolved {
			out = append(out, *ev.Attack)
		}
	}
	return out
}

func TestNew_InvalidPartySize(t *testing.T) {
	b := newBoss(boss.CategoryField, 10, 1, 1, 0, 0)
	for _, n := range []int{0, 4} {
		party := make([]*character.Character, n)
		for i := range party {
			party[i] = member("m", 10, 1, 1)
		}
		enc, err := encounter.New(party, b)
		assert.ErrorIs(t, err, encounter.ErrInvalidPartySize, "size=%d", n)
		assert.Nil(t, enc)
	}
}

func TestNew_NilArguments(t *testing.T) {
	_, err := encounter.New([]*character.Character{nil}, newBoss(boss.CategoryField, 10, 1, 1, 0, 0))
	assert.Error(t, err)
	_, err = encounter.New([]*character.Character{member("h", 10, 1, 1)}, nil)
	assert.Error(t, err)
}

func TestNew_InitialState(t *testing.T) {
	host := member("host", 10, 1, 1)
	enc, err := encounter.New([]*character.Character{host, member("s", 10, 1, 1)}, newBoss(boss.CategoryField, 10, 1, 1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, encounter.StateIntroduction, enc.State())
	assert.Same(t, host, enc.Host())
	assert.Len(t, enc.Party(), 2)
	assert.NotEmpty(t, enc.ID())
	assert.Zero(t, enc.Round())
}

// Host falls on round 2 before the summons act: defeat is immediate and the
// summons never roll that round.
func TestRun_HostFallsBeforeSummonsAct(t *testing.T) {
	host := member("host", 30, 5, 11)
	s1 := member("s1", 30, 5, 11)
	s2 := member("s2", 30, 5, 11)
	b := newBoss(boss.CategoryMini, 500, 20, 10, 1000, 1)
	roller := &scriptRoller{t: t,
		d20: []int{1, 15, 1, 1, 1, 1, 1, 20},
		d10: []int{5, 10},
	}
	rec := &recorder{}

	enc, err := encounter.New([]*character.Character{host, s1, s2}, b,
		encounter.WithRoller(roller), encounter.WithObserver(rec))
	require.NoError(t, err)
	res, err := enc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, encounter.StateDefeat, res.State)
	assert.False(t, res.Victory())
	assert.Equal(t, 2, res.Rounds)
	assert.Zero(t, host.Health)
	assert.Equal(t, 30, s1.Health)
	assert.Equal(t, 30, s2.Health)
	assert.Empty(t, roller.d20)
	assert.Empty(t, roller.d10)
	assert.Zero(t, host.Runes)

	attacks := rec.attacks()
	require.Len(t, attacks, 8)
	assert.Equal(t, "host", attacks[6].AttackerID)
	assert.Equal(t, "host", attacks[7].DefenderID)
	assert.Equal(t, encounter.EventDefeat, rec.events[len(rec.events)-1].Type)

	_, err = enc.GrantRewards()
	assert.ErrorIs(t, err, encounter.ErrNotVictorious)
}

// The boss dies to the host's attack: victory is immediate and the boss never
// counter-attacks.
func TestRun_BossFallsBeforeCounter(t *testing.T) {
	host := member("host", 30, 50, 11)
	summon := member("summon", 30, 50, 11)
	b := newBoss(boss.CategoryMain, 40, 25, 5, 20000, 0)
	roller := &scriptRoller{t: t, d20: []int{10}, d10: []int{10}}
	rec := &recorder{}

	enc, err := encounter.New([]*character.Character{host, summon}, b,
		encounter.WithRoller(roller), encounter.WithObserver(rec), encounter.WithLoot(testCatalog(t), fixedSrc(0)))
	require.NoError(t, err)
	res, err := enc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, encounter.StateVictory, res.State)
	assert.Equal(t, 1, res.Rounds)
	assert.Zero(t, b.Health)
	assert.Equal(t, 30, host.Health)
	require.Len(t, rec.attacks(), 1)
	assert.Equal(t, 20000, res.Runes)
	assert.Nil(t, res.Loot, "main bosses drop nothing")
	assert.Equal(t, 20000, host.Runes)
	assert.Equal(t, 20000, summon.Runes)
	assert.Equal(t, []encounter.EventType{
		encounter.EventIntroduction,
		encounter.EventRoundStarted,
		encounter.EventAttackResolved,
		encounter.EventVictory,
		encounter.EventRewardGranted,
	}, rec.types())
}

func TestGrantRewards_LootFollowsCategoryNotChance(t *testing.T) {
	tests := []struct {
		name       string
		cat        boss.Category
		dropChance int
		wantLoot   string
	}{
		{"field with zero chance draws upgraded", boss.CategoryField, 0, "Brass Shield +25"},
		{"mini with negative chance draws upgraded", boss.CategoryMini, -4, "Brass Shield +25"},
		{"main with positive chance drops nothing", boss.CategoryMain, 3, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			host := member("host", 30, 50, 11)
			b := newBoss(tc.cat, 10, 25, 5, 100, tc.dropChance)
			roller := &scriptRoller{t: t, d20: []int{10}, d10: []int{10}}

			enc, err := encounter.New([]*character.Character{host}, b,
				encounter.WithRoller(roller), encounter.WithLoot(testCatalog(t), fixedSrc(5)))
			require.NoError(t, err)
			res, err := enc.Run(context.Background())
			require.NoError(t, err)
			require.True(t, res.Victory())

			if tc.wantLoot == "" {
				assert.Nil(t, res.Loot)
				return
			}
			require.NotNil(t, res.Loot)
			assert.True(t, res.Loot.Upgraded())
			assert.Equal(t, tc.wantLoot, res.Loot.Item.Name)
		})
	}
}

func TestRun_DeadSummonsSkippedButRewarded(t *testing.T) {
	host := member("host", 30, 10, 11)
	dead := member("dead", 30, 10, 11)
	dead.Health = 0
	alive := member("alive", 30, 10, 11)
	b := newBoss(boss.CategoryField, 15, 15, 9, 3200, 5)
	// host hits for 10, boss misses host, alive hits for 10 and kills.
	roller := &scriptRoller{t: t, d20: []int{9, 1, 9}, d10: []int{10, 10}}
	rec := &recorder{}

	enc, err := encounter.New([]*character.Character{host, dead, alive}, b,
		encounter.WithRoller(roller), encounter.WithObserver(rec), encounter.WithLoot(testCatalog(t), fixedSrc(0)))
	require.NoError(t, err)
	res, err := enc.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Victory())
	for _, a := range rec.attacks() {
		assert.NotEqual(t, "dead", a.AttackerID)
		assert.NotEqual(t, "dead", a.DefenderID)
	}
	assert.Equal(t, "alive", rec.attacks()[2].AttackerID)
	for _, m := range []*character.Character{host, dead, alive} {
		assert.Equal(t, 3200, m.Runes, m.Name)
	}
	require.NotNil(t, res.Loot)
	assert.True(t, res.Loot.Upgraded())
	assert.Equal(t, encounter.EventLootDropped, rec.events[len(rec.events)-1].Type)
	assert.Equal(t, []*character.Character{host, alive}, enc.Alive())
}

func TestRun_SummonFallsAndFightContinues(t *testing.T) {
	host := member("host", 30, 10, 11)
	summon := member("summon", 5, 10, 11)
	b := newBoss(boss.CategoryField, 25, 10, 9, 100, 0)
	// round 1: host hit 10, boss miss; summon hit 10, boss hit 10 (summon falls).
	// round 2: host hit 10 kills.
	roller := &scriptRoller{t: t, d20: []int{9, 1, 9, 20, 9}, d10: []int{10, 10, 10, 10}}
	rec := &recorder{}

	enc, err := encounter.New([]*character.Character{host, summon}, b,
		encounter.WithRoller(roller), encounter.WithObserver(rec))
	require.NoError(t, err)
	res, err := enc.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Victory())
	assert.Equal(t, 2, res.Rounds)
	assert.Zero(t, summon.Health)
	assert.Contains(t, rec.types(), encounter.EventMemberFallen)
}

func TestGrantRewards_OneTimeTransition(t *testing.T) {
	host := member("host", 30, 50, 11)
	b := newBoss(boss.CategoryTutorial, 10, 10, 7, 400, 10)
	enc, err := encounter.New([]*character.Character{host}, b,
		encounter.WithRoller(&scriptRoller{t: t, d20: []int{20}, d10: []int{10}}),
		encounter.WithLoot(testCatalog(t), fixedSrc(3)))
	require.NoError(t, err)

	_, err = enc.GrantRewards()
	assert.ErrorIs(t, err, encounter.ErrNotVictorious)
	assert.False(t, enc.RewardsGranted())

	res, err := enc.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Victory())
	assert.Equal(t, 400, host.Runes)
	require.NotNil(t, res.Loot)
	assert.Equal(t, "Club", res.Loot.Item.Name)
	assert.True(t, enc.RewardsGranted())

	_, err = enc.GrantRewards()
	assert.ErrorIs(t, err, encounter.ErrRewardsGranted)
	assert.Equal(t, 400, host.Runes)
}

func TestRun_Twice(t *testing.T) {
	enc, err := encounter.New([]*character.Character{member("h", 10, 50, 1)}, newBoss(boss.CategoryMain, 1, 1, 1, 0, 0),
		encounter.WithRoller(&scriptRoller{t: t, d20: []int{20}, d10: []int{10}}))
	require.NoError(t, err)
	_, err = enc.Run(context.Background())
	require.NoError(t, err)
	_, err = enc.Run(context.Background())
	assert.Error(t, err)
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	enc, err := encounter.New([]*character.Character{member("h", 10, 1, 1)}, newBoss(boss.CategoryMain, 10, 1, 1, 0, 0))
	require.NoError(t, err)
	_, err = enc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, encounter.StateIntroduction, enc.State())
}

func TestRun_CancelledBetweenPhases(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	host := member("h", 10, 1, 1)
	b := newBoss(boss.CategoryMain, 10, 1, 1, 0, 0)
	obs := encounter.ObserverFunc(func(_ context.Context, ev encounter.Event) {
		if ev.Type == encounter.EventRoundStarted {
			cancel()
		}
	})
	enc, err := encounter.New([]*character.Character{host}, b,
		encounter.WithRoller(&scriptRoller{t: t}), encounter.WithObserver(obs))
	require.NoError(t, err)

	res, err := enc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, encounter.StateRoundLoop, res.State)
	assert.Equal(t, 10, b.Health)
	assert.Equal(t, 10, host.Health)
}

type narrator struct{}

func (narrator) Narrate(_ context.Context, ev encounter.Event) string {
	return ev.Type.String() + ":" + ev.Boss.Name
}

func TestRun_NarratorAndLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	rec := &recorder{}
	enc, err := encounter.New([]*character.Character{member("h", 10, 50, 1)}, newBoss(boss.CategoryMain, 1, 1, 1, 7, 0),
		encounter.WithRoller(&scriptRoller{t: t, d20: []int{20}, d10: []int{10}}),
		encounter.WithObserver(rec),
		encounter.WithNarrator(narrator{}),
		encounter.WithLogger(zap.New(core)))
	require.NoError(t, err)
	_, err = enc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "introduction:Margit", rec.events[0].Narrative)
	assert.Equal(t, "victory:Margit", rec.events[3].Narrative)

	won := logs.FilterMessage("encounter won").All()
	require.Len(t, won, 1)
	assert.Equal(t, enc.ID(), won[0].ContextMap()["encounter_id"])
	assert.Equal(t, "Margit", won[0].ContextMap()["boss"])
	assert.Equal(t, 1, logs.FilterMessage("rewards granted").Len())
}

func TestRun_Property_TerminalStateConsistent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 3).Draw(rt, "size")
		party := make([]*character.Character, size)
		for i := range party {
			party[i] = member(string(rune('a'+i)),
				rapid.IntRange(1, 60).Draw(rt, "hp"),
				rapid.IntRange(1, 30).Draw(rt, "attack"),
				rapid.IntRange(1, 15).Draw(rt, "armor"))
		}
		b := newBoss(boss.CategoryField,
			rapid.IntRange(1, 200).Draw(rt, "boss_hp"),
			rapid.IntRange(1, 30).Draw(rt, "boss_attack"),
			rapid.IntRange(1, 15).Draw(rt, "boss_armor"),
			rapid.IntRange(0, 5000).Draw(rt, "reward"), 0)
		seed := rapid.Int64().Draw(rt, "seed")
		roller := dice.NewLoggedRoller(rand.New(rand.NewSource(seed)), zap.NewNop())

		enc, err := encounter.New(party, b, encounter.WithRoller(roller))
		require.NoError(rt, err)
		res, err := enc.Run(context.Background())
		require.NoError(rt, err)

		switch res.State {
		case encounter.StateVictory:
			assert.True(rt, b.IsDead())
			for _, m := range party {
				assert.Equal(rt, b.Reward, m.Runes)
			}
		case encounter.StateDefeat:
			assert.True(rt, party[0].IsDead())
			assert.False(rt, b.IsDead())
			for _, m := range party {
				assert.Zero(rt, m.Runes)
			}
		default:
			rt.Fatalf("non-terminal result state %s", res.State)
		}
		for _, m := range party {
			assert.GreaterOrEqual(rt, m.Health, 0)
		}
		assert.GreaterOrEqual(rt, b.Health, 0)
	})
}
