//go:build wireinject

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/config"
	"github.com/cory-johannsen/hexbattle/internal/game/ai"
	"github.com/cory-johannsen/hexbattle/internal/simulation"
)

func initializeRunner(cfg config.Config, logger *zap.Logger) (*simulation.Runner, error) {
	wire.Build(
		provideRegistry,
		provideArmies,
		provideSource,
		provideEngine,
		ai.NewController,
		wire.Bind(new(simulation.Actor), new(*ai.Controller)),
		provideListener,
		provideRunner,
	)
	return nil, nil
}
