package bootstrap

import (
	"context"

	"duel-service/config"
	"duel-service/internal/api/game"
	"duel-service/internal/initializer"
)

type ResultPublisher interface {
	game.Recorder
	Close() error
}

type AccountConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

func SetupMessaging(config config.Config, ledger Ledger) (ResultPublisher, AccountConsumer) {
	return initializer.InitResultPublisher(config), initializer.InitAccountConsumer(config, ledger)
}
