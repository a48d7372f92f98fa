package initializer

import (
	"time"

	"duel-service/config"
	"duel-service/infra/memory"
	"duel-service/infra/puzzles"
	"duel-service/internal/api/game"

	"go.uber.org/zap"
)

func InitMemoryLedger(appConfig config.Config) *memory.Ledger {
	return memory.NewLedger(appConfig.Ledger.StartingBalance)
}

// InitPuzzleBank uses the built-in catalog unless puzzles.file is set. Seed 0
// picks a fresh seed per process.
func InitPuzzleBank(appConfig config.Config) *puzzles.Bank {
	seed := appConfig.Puzzles.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if appConfig.Puzzles.File == "" {
		return puzzles.Default(seed)
	}
	bank, err := puzzles.LoadFile(appConfig.Puzzles.File, seed)
	if err != nil {
		zap.L().Fatal("Failed to load puzzle file", zap.String("file", appConfig.Puzzles.File), zap.Error(err))
	}
	return bank
}

func InitRegistry(deps game.Dependencies) *game.Registry {
	registry, err := game.NewRegistry(deps)
	if err != nil {
		zap.L().Fatal("Failed to build room registry", zap.Error(err))
	}
	return registry
}
