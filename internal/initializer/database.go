package initializer

import (
	"duel-service/config"
	"duel-service/infra/postgres"

	"go.uber.org/zap"
)

func InitDatabase(appConfig config.Config) *postgres.Repository {
	repo, err := postgres.NewRepository(appConfig.Postgres.DSN(), appConfig.Ledger.StartingBalance)
	if err != nil {
		zap.L().Fatal("Failed to connect to Postgres", zap.Error(err))
	}
	return repo
}
