package bootstrap

import (
	"duel-service/internal/api/game"
	gameHub "duel-service/internal/api/ws/hub"
	wsUsecase "duel-service/internal/api/ws/usecase"
	"duel-service/internal/initializer"
)

type Hub interface {
	wsUsecase.Hub
	game.Notifier
	SetHandler(handler gameHub.MessageHandler)
	ClientCount() int
}

func InitWebsocket() Hub {
	return initializer.InitWebsocket()
}
