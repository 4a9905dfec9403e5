package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/tarnished/internal/config"
	"github.com/cory-johannsen/tarnished/internal/frontend/console"
	"github.com/cory-johannsen/tarnished/internal/game/boss"
	"github.com/cory-johannsen/tarnished/internal/game/campaign"
	"github.com/cory-johannsen/tarnished/internal/game/character"
	"github.com/cory-johannsen/tarnished/internal/game/dice"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
	"github.com/cory-johannsen/tarnished/internal/observability"
	"github.com/cory-johannsen/tarnished/internal/scripting"
)

// ProvideLogger builds the application logger. The cleanup flushes it.
func ProvideLogger(cfg config.Config) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// ProvideRoller returns the crypto-backed dice roller shared by every encounter.
func ProvideRoller(logger *zap.Logger) *dice.Roller {
	return dice.NewLoggedRoller(dice.NewCryptoSource(), logger)
}

// ProvideTypeSet classifies items with the configured type lists, falling back
// to the built-in ones for an empty list.
func ProvideTypeSet(cfg config.Config) inventory.TypeSet {
	weapons, shields := cfg.Game.WeaponTypes, cfg.Game.ShieldTypes
	if len(weapons) == 0 {
		weapons = inventory.DefaultWeaponTypes
	}
	if len(shields) == 0 {
		shields = inventory.DefaultShieldTypes
	}
	return inventory.NewTypeSet(weapons, shields)
}

// ProvideItemCatalog loads the standard and upgraded item pools.
func ProvideItemCatalog(cfg config.Config, types inventory.TypeSet, logger *zap.Logger) (*inventory.Catalog, error) {
	cat, err := inventory.LoadCatalog(cfg.Content.WeaponsDir, types)
	if err != nil {
		return nil, err
	}
	logger.Info("item catalog loaded",
		zap.Int("standard", len(cat.Pool(inventory.TierStandard))),
		zap.Int("upgraded", len(cat.Pool(inventory.TierUpgraded))),
	)
	return cat, nil
}

// ProvideBossCatalog loads the boss pools and applies drop chance overrides.
func ProvideBossCatalog(cfg config.Config, logger *zap.Logger) (*boss.Catalog, error) {
	var opts []boss.Option
	for name, chance := range cfg.Game.DropChances {
		opts = append(opts, boss.WithDropChance(boss.Category(name), chance))
	}
	cat, err := boss.LoadCatalog(cfg.Content.BossesDir, opts...)
	if err != nil {
		return nil, err
	}
	fields := make([]zap.Field, 0, len(boss.Categories))
	for _, c := range boss.Categories {
		fields = append(fields, zap.Int(string(c), len(cat.Pool(c))))
	}
	logger.Info("boss catalog loaded", fields...)
	return cat, nil
}

// ProvideClasses loads the starting class builds.
func ProvideClasses(cfg config.Config, logger *zap.Logger) ([]*character.Class, error) {
	classes, err := character.LoadClasses(cfg.Content.ClassesDir)
	if err != nil {
		return nil, err
	}
	logger.Info("classes loaded", zap.Int("count", len(classes)))
	return classes, nil
}

// ProvideScripts loads the Lua hook tree. An empty scripts_dir yields a
// manager with no VMs. The cleanup closes every VM.
func ProvideScripts(cfg config.Config, roller *dice.Roller, logger *zap.Logger) (*scripting.Manager, func(), error) {
	mgr := scripting.NewManager(roller, logger)
	if dir := cfg.Content.ScriptsDir; dir != "" {
		if err := mgr.LoadTree(dir, cfg.Game.InstructionLimit); err != nil {
			mgr.Close()
			return nil, nil, err
		}
		logger.Info("scripts loaded", zap.Strings("keys", mgr.Keys()))
	}
	return mgr, mgr.Close, nil
}

// ProvideTerm attaches the console to the process's standard streams.
func ProvideTerm(cfg config.Config) *console.Term {
	return console.NewTerm(os.Stdin, os.Stdout, cfg.Console.Color)
}

// ProvidePresenter builds the console presenter with configured pacing.
func ProvidePresenter(cfg config.Config, term *console.Term, logger *zap.Logger) *console.Presenter {
	return console.NewPresenter(term,
		console.WithPhaseDelay(cfg.Game.PhaseDelay),
		console.WithRestDelay(cfg.Game.RestDelay),
		console.WithPause(cfg.Console.Pause),
		console.WithPresenterLogger(logger),
	)
}

// ProvideCampaign wires the campaign to the catalogs, dice, presenter and,
// when any scripts are loaded, the Lua narrator.
func ProvideCampaign(
	bosses *boss.Catalog,
	items *inventory.Catalog,
	roller *dice.Roller,
	presenter *console.Presenter,
	scripts *scripting.Manager,
	logger *zap.Logger,
) *campaign.Campaign {
	opts := []campaign.Option{
		campaign.WithObserver(presenter),
		campaign.WithLogger(logger),
	}
	if len(scripts.Keys()) > 0 {
		opts = append(opts, campaign.WithNarrator(scripting.NewNarrator(scripts)))
	}
	return campaign.New(bosses, items, roller, presenter, opts...)
}
