package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/hexbattle/internal/game/battle"
)

func validConfig() Config {
	return Config{
		Battle: BattleConfig{
			LuckProbability:   0.15,
			MoraleProbability: 0.15,
			ArmySlots:         4,
			FieldWidth:        14,
			FieldHeight:       8,
			MaxTurns:          500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Content: ContentConfig{
			UnitsDir: "content/units",
			Roster:   "content/rosters/skirmish.yaml",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultMatchesValidConfig(t *testing.T) {
	assert.Equal(t, validConfig(), Default())
}

func TestBattleOptions(t *testing.T) {
	opts := validConfig().Battle.Options()
	assert.Equal(t, battle.DefaultOptions(), opts)
	assert.NoError(t, opts.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
battle:
  luck_probability: 0.5
  army_slots: 2
  field_width: 10
  field_height: 6
  seed: 99
  turn_delay: 250ms
logging:
  level: debug
  format: console
content:
  units_dir: /tmp/units
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Battle.LuckProbability)
	assert.Equal(t, 0.15, cfg.Battle.MoraleProbability, "unset keys keep defaults")
	assert.Equal(t, 2, cfg.Battle.ArmySlots)
	assert.Equal(t, int64(99), cfg.Battle.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Battle.TurnDelay)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/units", cfg.Content.UnitsDir)
	assert.Equal(t, "content/rosters/skirmish.yaml", cfg.Content.Roster)
}

func TestLoadDevConfig(t *testing.T) {
	cfg, err := Load("../../configs/dev.yaml")
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 500, cfg.Battle.MaxTurns)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HEXBATTLE_BATTLE_SEED", "1234")
	t.Setenv("HEXBATTLE_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Battle.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("battle:\n  max_turns: 0\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "battle.max_turns")
}

func TestValidateBattle(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BattleConfig)
		field  string
	}{
		{"luck too high", func(b *BattleConfig) { b.LuckProbability = 1.01 }, "battle.luck_probability"},
		{"morale negative", func(b *BattleConfig) { b.MoraleProbability = -0.5 }, "battle.morale_probability"},
		{"no slots", func(b *BattleConfig) { b.ArmySlots = 0 }, "battle.army_slots"},
		{"no width", func(b *BattleConfig) { b.FieldWidth = 0 }, "battle.field_width"},
		{"slots exceed rows", func(b *BattleConfig) { b.FieldHeight = 3 }, "battle.field_height"},
		{"no turns", func(b *BattleConfig) { b.MaxTurns = 0 }, "battle.max_turns"},
		{"negative delay", func(b *BattleConfig) { b.TurnDelay = -time.Second }, "battle.turn_delay"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg.Battle)
			assert.ErrorContains(t, cfg.Validate(), tc.field)
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := validConfig()
	cfg.Battle.MaxTurns = 0
	cfg.Logging.Level = "trace"
	cfg.Content.Roster = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "battle.max_turns")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "content.roster")
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

// Property-based tests

func TestPropertyProbabilityRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.Float64Range(0, 1).Draw(t, "p")
		cfg := validConfig()
		cfg.Battle.LuckProbability = p
		cfg.Battle.MoraleProbability = p
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid probability %v rejected: %v", p, err)
		}
		if err := cfg.Battle.Options().Validate(); err != nil {
			t.Fatalf("options for probability %v rejected: %v", p, err)
		}
	})
}

func TestPropertyInvalidProbability(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.OneOf(
			rapid.Float64Range(-10, -0.001),
			rapid.Float64Range(1.001, 10),
		).Draw(t, "p")
		cfg := validConfig()
		cfg.Battle.LuckProbability = p
		if cfg.Validate() == nil {
			t.Fatalf("invalid probability %v accepted", p)
		}
	})
}

func TestPropertyFieldMustFitArmy(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		slots := rapid.IntRange(1, 12).Draw(t, "slots")
		height := rapid.IntRange(1, 12).Draw(t, "height")
		cfg := validConfig()
		cfg.Battle.ArmySlots = slots
		cfg.Battle.FieldHeight = height
		err := cfg.Validate()
		if (height >= slots) != (err == nil) {
			t.Fatalf("slots=%d height=%d: unexpected result %v", slots, height, err)
		}
	})
}
