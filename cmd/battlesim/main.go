// Package main runs one AI-versus-AI hex battle from YAML content and logs the outcome.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/config"
	"github.com/cory-johannsen/hexbattle/internal/observability"
	"github.com/cory-johannsen/hexbattle/internal/simulation"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	unitsDir := flag.String("units", "", "path to unit YAML files directory (overrides content.units_dir)")
	rosterPath := flag.String("roster", "", "path to roster YAML file (overrides content.roster)")
	seed := flag.Int64("seed", 0, "random seed; 0 uses crypto randomness (overrides battle.seed)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	applyFlags(&cfg, *unitsDir, *rosterPath, *seed, flagSet("seed"))

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	runner, err := initializeRunner(cfg, logger)
	if err != nil {
		logger.Fatal("preparing battle", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := runner.Run(ctx)
	switch {
	case errors.Is(err, simulation.ErrTurnLimit):
		logger.Warn("battle undecided", zap.Int("turns", summary.Turns))
	case err != nil:
		logger.Info("battle interrupted", zap.Error(err))
	}

	logger.Info("battle summary",
		zap.String("battle_id", summary.BattleID),
		zap.Bool("decided", summary.Decided),
		zap.Stringer("winner", summary.Winner),
		zap.Int("turns", summary.Turns),
		zap.Int("rounds", summary.Rounds),
		zap.Duration("elapsed", time.Since(start)),
	)
	fmt.Println(describe(summary))
}

// applyFlags layers command-line overrides on top of the loaded configuration.
func applyFlags(cfg *config.Config, unitsDir, rosterPath string, seed int64, seedSet bool) {
	if unitsDir != "" {
		cfg.Content.UnitsDir = unitsDir
	}
	if rosterPath != "" {
		cfg.Content.Roster = rosterPath
	}
	if seedSet {
		cfg.Battle.Seed = seed
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func describe(s simulation.Summary) string {
	if !s.Decided {
		return fmt.Sprintf("battle %s undecided after %d turns (%d rounds)", s.BattleID, s.Turns, s.Rounds)
	}
	return fmt.Sprintf("battle %s won by %s after %d turns (%d rounds)", s.BattleID, s.Winner, s.Turns, s.Rounds)
}
