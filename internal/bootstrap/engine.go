package bootstrap

import (
	"context"

	"duel-service/config"
	"duel-service/internal/api/game"
	"duel-service/internal/initializer"

	"go.uber.org/zap"
)

// Ledger is a balance ledger that can also open accounts on demand.
type Ledger interface {
	game.BalanceLedger
	OpenAccount(ctx context.Context, accountID string, balance int64) error
}

// InitLedger picks the ledger driver. The postgres driver needs the repository.
func InitLedger(config config.Config, repo PostgresRepository) Ledger {
	switch config.Ledger.Driver {
	case "postgres":
		if repo == nil {
			zap.L().Fatal("ledger.driver=postgres needs postgres.enabled=true")
		}
		return repo
	case "", "memory":
		return initializer.InitMemoryLedger(config)
	default:
		zap.L().Fatal("Unknown ledger driver", zap.String("driver", config.Ledger.Driver))
		return nil
	}
}

func InitPuzzles(config config.Config) game.PuzzleProvider {
	return initializer.InitPuzzleBank(config)
}

func InitRegistry(deps game.Dependencies) *game.Registry {
	return initializer.InitRegistry(deps)
}
