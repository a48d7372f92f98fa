package kafka

import "time"

type KafkaConfig struct {
	Brokers           []string
	ResultsTopic      string
	AccountsTopic     string
	GroupID           string
	ClientID          string
	MaxRetries        int
	ConnectionTimeout time.Duration
}

func NewDefaultConfig(brokers []string) KafkaConfig {
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}
	return KafkaConfig{
		Brokers:           brokers,
		ResultsTopic:      "game-results",
		AccountsTopic:     "account-events",
		GroupID:           "duel-service",
		ClientID:          "duel-service",
		MaxRetries:        3,
		ConnectionTimeout: 10 * time.Second,
	}
}

// Message is the JSON envelope on every topic.
type Message struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Payload   []byte    `json:"payload"`
}

const (
	TypeGameEnded      = "game_ended"
	TypeAccountCreated = "account_created"
)
