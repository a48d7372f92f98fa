package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// AccountCreated is published by the account service when a user signs up.
type AccountCreated struct {
	AccountID      string `json:"account_id"`
	Username       string `json:"username"`
	InitialBalance int64  `json:"initial_balance"`
}

type AccountOpener interface {
	OpenAccount(ctx context.Context, accountID string, balance int64) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AccountConsumer opens a ledger account for each account_created event.
type AccountConsumer struct {
	reader         messageReader
	opener         AccountOpener
	defaultBalance int64
	maxRetries     int
	retryBackoff   time.Duration
	log            *zap.Logger
}

func NewAccountConsumer(cfg KafkaConfig, opener AccountOpener, defaultBalance int64, log *zap.Logger) *AccountConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.AccountsTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return newAccountConsumer(reader, opener, defaultBalance, cfg.MaxRetries, log)
}

func newAccountConsumer(r messageReader, opener AccountOpener, defaultBalance int64, maxRetries int, log *zap.Logger) *AccountConsumer {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &AccountConsumer{
		reader:         r,
		opener:         opener,
		defaultBalance: defaultBalance,
		maxRetries:     maxRetries,
		retryBackoff:   500 * time.Millisecond,
		log:            log.Named("accounts"),
	}
}

// Run consumes until ctx is done. A message is committed after it is handled
// or after its retries are exhausted.
func (c *AccountConsumer) Run(ctx context.Context) error {
	c.log.Info("account consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("fetch account event: %w", err)
		}

		if err := c.handleWithRetry(ctx, msg); err != nil {
			c.log.Error("account event dropped",
				zap.String("key", string(msg.Key)),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.log.Warn("commit failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func (c *AccountConsumer) handleWithRetry(ctx context.Context, msg kafka.Message) error {
	var err error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err = c.Handle(ctx, msg.Value); err == nil {
			return nil
		}
		var perm permanentError
		if errors.As(err, &perm) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}

type permanentError struct{ error }

func (c *AccountConsumer) Handle(ctx context.Context, value []byte) error {
	var env Message
	if err := json.Unmarshal(value, &env); err != nil {
		return permanentError{fmt.Errorf("decode envelope: %w", err)}
	}
	if env.Type != TypeAccountCreated {
		return nil
	}
	var data AccountCreated
	if err := json.Unmarshal(env.Payload, &data); err != nil {
		return permanentError{fmt.Errorf("decode account_created %s: %w", env.ID, err)}
	}
	if data.AccountID == "" {
		return permanentError{fmt.Errorf("account_created %s has no account id", env.ID)}
	}
	balance := data.InitialBalance
	if balance <= 0 {
		balance = c.defaultBalance
	}
	if err := c.opener.OpenAccount(ctx, data.AccountID, balance); err != nil {
		return err
	}
	c.log.Info("account opened", zap.String("account_id", data.AccountID), zap.Int64("balance", balance))
	return nil
}

func (c *AccountConsumer) Close() error {
	return c.reader.Close()
}
