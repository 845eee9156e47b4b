// Package config provides Viper-based configuration loading for the battle simulator.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/hexbattle/internal/game/army"
	"github.com/cory-johannsen/hexbattle/internal/game/battle"
)

// BattleConfig holds the tunable constants of a battle and its runner.
type BattleConfig struct {
	// LuckProbability is the per-attack chance of double damage.
	LuckProbability float64 `mapstructure:"luck_probability"`
	// MoraleProbability is the per-action chance of a reported morale event.
	MoraleProbability float64 `mapstructure:"morale_probability"`
	// ArmySlots is the slot count of each army.
	ArmySlots   int `mapstructure:"army_slots"`
	FieldWidth  int `mapstructure:"field_width"`
	FieldHeight int `mapstructure:"field_height"`
	// Seed selects a reproducible random source; 0 uses crypto randomness.
	Seed int64 `mapstructure:"seed"`
	// MaxTurns bounds a simulated battle.
	MaxTurns int `mapstructure:"max_turns"`
	// TurnDelay paces a simulated battle; 0 runs flat out.
	TurnDelay time.Duration `mapstructure:"turn_delay"`
}

// Options converts the battle settings into engine options.
//
// Postcondition: the result validates whenever c passes Config.Validate.
func (c BattleConfig) Options() battle.Options {
	return battle.Options{
		LuckProbability:   c.LuckProbability,
		MoraleProbability: c.MoraleProbability,
		Field:             battle.Field{Width: c.FieldWidth, Height: c.FieldHeight},
	}
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig locates the YAML content the simulator loads.
type ContentConfig struct {
	UnitsDir string `mapstructure:"units_dir"`
	Roster   string `mapstructure:"roster"`
}

// Config is the top-level application configuration.
type Config struct {
	Battle  BattleConfig  `mapstructure:"battle"`
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateBattle(c.Battle); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateBattle(b BattleConfig) error {
	var errs []string
	if b.LuckProbability < 0 || b.LuckProbability > 1 {
		errs = append(errs, fmt.Sprintf("battle.luck_probability must be in [0, 1], got %v", b.LuckProbability))
	}
	if b.MoraleProbability < 0 || b.MoraleProbability > 1 {
		errs = append(errs, fmt.Sprintf("battle.morale_probability must be in [0, 1], got %v", b.MoraleProbability))
	}
	if b.ArmySlots < 1 {
		errs = append(errs, fmt.Sprintf("battle.army_slots must be >= 1, got %d", b.ArmySlots))
	}
	if b.FieldWidth < 1 {
		errs = append(errs, fmt.Sprintf("battle.field_width must be >= 1, got %d", b.FieldWidth))
	}
	if b.FieldHeight < b.ArmySlots {
		errs = append(errs, fmt.Sprintf("battle.field_height must be >= battle.army_slots (%d), got %d", b.ArmySlots, b.FieldHeight))
	}
	if b.MaxTurns < 1 {
		errs = append(errs, fmt.Sprintf("battle.max_turns must be >= 1, got %d", b.MaxTurns))
	}
	if b.TurnDelay < 0 {
		errs = append(errs, "battle.turn_delay must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
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
	if c.UnitsDir == "" {
		errs = append(errs, "content.units_dir must not be empty")
	}
	if c.Roster == "" {
		errs = append(errs, "content.roster must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with HEXBATTLE_ prefix
	v.SetEnvPrefix("HEXBATTLE")
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

// Default returns the configuration Load produces with no file and no environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config.Default: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("battle.luck_probability", battle.DefaultLuckProbability)
	v.SetDefault("battle.morale_probability", battle.DefaultMoraleProbability)
	v.SetDefault("battle.army_slots", army.DefaultSlots)
	v.SetDefault("battle.field_width", battle.DefaultFieldWidth)
	v.SetDefault("battle.field_height", battle.DefaultFieldHeight)
	v.SetDefault("battle.seed", 0)
	v.SetDefault("battle.max_turns", 500)
	v.SetDefault("battle.turn_delay", "0s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("content.units_dir", "content/units")
	v.SetDefault("content.roster", "content/rosters/skirmish.yaml")
}
