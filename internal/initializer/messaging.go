package initializer

import (
	"duel-service/config"
	"duel-service/infra/kafka"

	"go.uber.org/zap"
)

func kafkaConfig(appConfig config.Config) kafka.KafkaConfig {
	cfg := kafka.NewDefaultConfig(appConfig.Kafka.Brokers)
	if appConfig.Kafka.ResultsTopic != "" {
		cfg.ResultsTopic = appConfig.Kafka.ResultsTopic
	}
	if appConfig.Kafka.AccountsTopic != "" {
		cfg.AccountsTopic = appConfig.Kafka.AccountsTopic
	}
	if appConfig.Kafka.GroupID != "" {
		cfg.GroupID = appConfig.Kafka.GroupID
	}
	cfg.ClientID = appConfig.App.Name
	return cfg
}

func InitResultPublisher(appConfig config.Config) *kafka.ResultPublisher {
	cfg := kafkaConfig(appConfig)
	zap.L().Info("Kafka result publisher initialized", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.ResultsTopic))
	return kafka.NewResultPublisher(cfg)
}

func InitAccountConsumer(appConfig config.Config, opener kafka.AccountOpener) *kafka.AccountConsumer {
	cfg := kafkaConfig(appConfig)
	zap.L().Info("Kafka account consumer initialized", zap.String("topic", cfg.AccountsTopic), zap.String("group_id", cfg.GroupID))
	return kafka.NewAccountConsumer(cfg, opener, appConfig.Ledger.StartingBalance, zap.L())
}
