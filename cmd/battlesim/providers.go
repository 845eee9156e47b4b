package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/config"
	"github.com/cory-johannsen/hexbattle/internal/game/ai"
	"github.com/cory-johannsen/hexbattle/internal/game/army"
	"github.com/cory-johannsen/hexbattle/internal/game/battle"
	"github.com/cory-johannsen/hexbattle/internal/game/dice"
	"github.com/cory-johannsen/hexbattle/internal/game/unit"
	"github.com/cory-johannsen/hexbattle/internal/simulation"
)

// Armies pairs the two sides built from a roster.
type Armies struct {
	Attacker *army.Army
	Defender *army.Army
}

func provideRegistry(cfg config.Config, logger *zap.Logger) (*unit.Registry, error) {
	types, err := unit.LoadTypes(cfg.Content.UnitsDir)
	if err != nil {
		return nil, fmt.Errorf("loading unit types: %w", err)
	}
	reg, err := unit.NewRegistryFromTypes(types)
	if err != nil {
		return nil, err
	}
	logger.Info("unit catalog loaded", zap.String("dir", cfg.Content.UnitsDir), zap.Int("types", reg.Len()))
	return reg, nil
}

func provideArmies(cfg config.Config, reg *unit.Registry) (Armies, error) {
	roster, err := army.LoadRoster(cfg.Content.Roster)
	if err != nil {
		return Armies{}, fmt.Errorf("loading roster: %w", err)
	}
	att, def, err := roster.BuildArmies(reg, cfg.Battle.ArmySlots)
	if err != nil {
		return Armies{}, fmt.Errorf("building armies from %s: %w", cfg.Content.Roster, err)
	}
	return Armies{Attacker: att, Defender: def}, nil
}

func provideSource(cfg config.Config) dice.Source {
	return dice.SourceForSeed(cfg.Battle.Seed)
}

func provideEngine(cfg config.Config, armies Armies, src dice.Source, logger *zap.Logger) (*battle.Engine, error) {
	return battle.NewEngine(armies.Attacker, armies.Defender, src, logger, cfg.Battle.Options())
}

func provideListener(logger *zap.Logger) simulation.Listener {
	return simulation.TurnLogger(logger)
}

func provideRunner(cfg config.Config, e *battle.Engine, actor simulation.Actor, logger *zap.Logger, listener simulation.Listener) *simulation.Runner {
	opts := simulation.Options{MaxTurns: cfg.Battle.MaxTurns, TurnDelay: cfg.Battle.TurnDelay}
	return simulation.NewRunner(e, actor, logger, opts, listener)
}

var _ simulation.Actor = (*ai.Controller)(nil)
