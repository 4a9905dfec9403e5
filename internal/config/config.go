// Package config provides Viper-based configuration loading for Tarnished.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is "stderr", "stdout", or a file path.
	Output string `mapstructure:"output"`
}

// ContentConfig locates the YAML catalogs and Lua scripts.
type ContentConfig struct {
	ClassesDir string `mapstructure:"classes_dir"`
	BossesDir  string `mapstructure:"bosses_dir"`
	WeaponsDir string `mapstructure:"weapons_dir"`
	// ScriptsDir is optional; empty disables flavor scripts.
	ScriptsDir string `mapstructure:"scripts_dir"`
}

// GameConfig holds rules the catalogs are built with and console pacing.
type GameConfig struct {
	// PhaseDelay is the pause after each attack phase is shown.
	PhaseDelay time.Duration `mapstructure:"phase_delay"`
	// RestDelay is the pause after a party rests.
	RestDelay time.Duration `mapstructure:"rest_delay"`
	// InstructionLimit caps Lua opcodes per hook call; 0 uses the scripting default.
	InstructionLimit int `mapstructure:"instruction_limit"`
	// WeaponTypes and ShieldTypes classify catalog items; empty uses the built-in lists.
	WeaponTypes []string `mapstructure:"weapon_types"`
	ShieldTypes []string `mapstructure:"shield_types"`
	// DropChances overrides the loot luck range of the tutorial, field and mini
	// categories. Values below 1 always draw from the upgraded pool.
	DropChances map[string]int `mapstructure:"drop_chances"`
}

// ConsoleConfig holds terminal presentation settings.
type ConsoleConfig struct {
	// Color enables ANSI color output.
	Color bool `mapstructure:"color"`
	// Pause waits for ENTER after each encounter.
	Pause bool `mapstructure:"pause"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
	Game    GameConfig    `mapstructure:"game"`
	Console ConsoleConfig `mapstructure:"console"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.ClassesDir == "" {
		errs = append(errs, "content.classes_dir must not be empty")
	}
	if c.BossesDir == "" {
		errs = append(errs, "content.bosses_dir must not be empty")
	}
	if c.WeaponsDir == "" {
		errs = append(errs, "content.weapons_dir must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

var lootCategories = map[string]bool{"tutorial": true, "field": true, "mini": true}

func validateGame(g GameConfig) error {
	var errs []string
	if g.PhaseDelay < 0 {
		errs = append(errs, "game.phase_delay must not be negative")
	}
	if g.RestDelay < 0 {
		errs = append(errs, "game.rest_delay must not be negative")
	}
	if g.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("game.instruction_limit must be >= 0, got %d", g.InstructionLimit))
	}
	shields := make(map[string]bool, len(g.ShieldTypes))
	for _, s := range g.ShieldTypes {
		shields[s] = true
	}
	for _, w := range g.WeaponTypes {
		if shields[w] {
			errs = append(errs, fmt.Sprintf("game item type %q is both a weapon and a shield type", w))
		}
	}
	for cat, chance := range g.DropChances {
		switch {
		case cat == "main":
			errs = append(errs, "game.drop_chances.main is not allowed: main bosses never drop loot")
		case !lootCategories[cat]:
			errs = append(errs, fmt.Sprintf("game.drop_chances has unknown category %q", cat))
		}
		if chance < 0 {
			errs = append(errs, fmt.Sprintf("game.drop_chances.%s must be >= 0, got %d", cat, chance))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with TARNISHED_ prefix
	v.SetEnvPrefix("TARNISHED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("content.classes_dir", "content/classes")
	v.SetDefault("content.bosses_dir", "content/bosses")
	v.SetDefault("content.weapons_dir", "content/weapons")
	v.SetDefault("content.scripts_dir", "content/scripts")

	v.SetDefault("game.phase_delay", "1s")
	v.SetDefault("game.rest_delay", "2500ms")
	v.SetDefault("game.instruction_limit", 0)

	v.SetDefault("console.color", true)
	v.SetDefault("console.pause", true)
}
