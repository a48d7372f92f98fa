package bootstrap

import (
	"context"

	"duel-service/config"
	"duel-service/domain"
	"duel-service/internal/initializer"
)

type PostgresRepository interface {
	Ledger
	Close() error
	RecordGame(ctx context.Context, rec domain.GameRecord) error
	RecordUnresolved(ctx context.Context, p domain.UnresolvedPayout) error
	ListUnresolved(ctx context.Context, limit int) ([]domain.UnresolvedPayout, error)
}

func InitDatabase(config config.Config) PostgresRepository {
	return initializer.InitDatabase(config)
}
