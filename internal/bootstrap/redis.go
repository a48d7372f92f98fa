package bootstrap

import (
	"duel-service/config"
	"duel-service/internal/api/game"
	"duel-service/internal/initializer"
)

type RoomRedisManager interface {
	game.Notifier
	Close() error
}

func InitRoomRedis(config config.Config) RoomRedisManager {
	return initializer.InitRoomRedis(config)
}
