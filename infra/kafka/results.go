package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"duel-service/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ResultPublisher writes every finished game to the results topic, keyed by room.
type ResultPublisher struct {
	writer  messageWriter
	source  string
	timeout time.Duration
}

func NewResultPublisher(cfg KafkaConfig) *ResultPublisher {
	return &ResultPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.ResultsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  cfg.MaxRetries,
			WriteTimeout: cfg.ConnectionTimeout,
		},
		source:  cfg.ClientID,
		timeout: cfg.ConnectionTimeout,
	}
}

func newResultPublisher(w messageWriter, source string) *ResultPublisher {
	return &ResultPublisher{writer: w, source: source, timeout: time.Second}
}

func (p *ResultPublisher) RecordGame(ctx context.Context, rec domain.GameRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal game record: %w", err)
	}
	value, err := json.Marshal(Message{
		ID:        uuid.NewString(),
		Type:      TypeGameEnded,
		Source:    p.source,
		Timestamp: rec.FinishedAt,
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rec.RoomID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(TypeGameEnded)},
		},
	})
	if err != nil {
		return fmt.Errorf("write game result %s: %w", rec.RoomID, err)
	}
	return nil
}

func (p *ResultPublisher) Close() error {
	return p.writer.Close()
}
