package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"duel-service/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const LobbyChannel = "lobby"

// RoomEvent is the envelope mirrored to pub/sub.
type RoomEvent struct {
	RoomID    string       `json:"roomId,omitempty"`
	Type      string       `json:"type"`
	Data      domain.Event `json:"data"`
	Timestamp time.Time    `json:"timestamp"`
}

// RedisManager mirrors room and lobby events to pub/sub channels.
type RedisManager struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisManager(redisAddr string, password string, db int) (*RedisManager, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", redisAddr, err)
	}

	return &RedisManager{client: rdb, timeout: 2 * time.Second}, nil
}

func (rm *RedisManager) Close() error {
	return rm.client.Close()
}

func RoomChannel(roomID string) string {
	return fmt.Sprintf("room:%s", roomID)
}

func (rm *RedisManager) PublishMessage(ctx context.Context, channel, roomID string, e domain.Event) error {
	payload, err := json.Marshal(RoomEvent{
		RoomID:    roomID,
		Type:      "room_manager",
		Data:      e,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal redis message: %w", err)
	}
	if err := rm.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}

func (rm *RedisManager) publish(channel, roomID string, e domain.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), rm.timeout)
	defer cancel()
	if err := rm.PublishMessage(ctx, channel, roomID, e); err != nil {
		zap.L().Warn("redis mirror failed", zap.String("channel", channel), zap.String("type", e.Type), zap.Error(err))
	}
}

func (rm *RedisManager) BroadcastRoom(roomID string, e domain.Event) {
	rm.publish(RoomChannel(roomID), roomID, e)
}

// SendToPlayer is not mirrored; per-player messages stay on the socket.
func (rm *RedisManager) SendToPlayer(string, string, domain.Event) {}

func (rm *RedisManager) BroadcastLobby(e domain.Event) {
	rm.publish(LobbyChannel, "", e)
}
