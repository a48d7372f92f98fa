package initializer

import (
	"fmt"

	"duel-service/config"
	"duel-service/infra/redis"

	"go.uber.org/zap"
)

func InitRoomRedis(appConfig config.Config) *redis.RedisManager {
	address := fmt.Sprintf("%s:%s", appConfig.SessionRedis.Host, appConfig.SessionRedis.Port)

	redisManager, err := redis.NewRedisManager(address, appConfig.SessionRedis.Password, appConfig.SessionRedis.DB)
	if err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.String("address", address), zap.Error(err))
	}
	return redisManager
}
