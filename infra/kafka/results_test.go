package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"duel-service/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written []kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestRecordGame_PublishesEnvelopeKeyedByRoom(t *testing.T) {
	w := &fakeWriter{}
	p := newResultPublisher(w, "duel-service")
	finished := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := domain.GameRecord{RoomID: "room-1", RoomName: "friday", FinishedAt: finished, PlayerCount: 2, PrizePool: 2000, HouseTake: 120, PlayerPot: 1880}

	require.NoError(t, p.RecordGame(t.Context(), rec))

	require.Len(t, w.written, 1)
	msg := w.written[0]
	require.Equal(t, "room-1", string(msg.Key))
	require.Equal(t, []kafka.Header{{Key: "type", Value: []byte(TypeGameEnded)}}, msg.Headers)

	var env Message
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	require.Equal(t, TypeGameEnded, env.Type)
	require.Equal(t, "duel-service", env.Source)
	require.True(t, finished.Equal(env.Timestamp))
	require.NotEmpty(t, env.ID)

	var got domain.GameRecord
	require.NoError(t, json.Unmarshal(env.Payload, &got))
	require.Equal(t, int64(1880), got.PlayerPot)
	require.Equal(t, "friday", got.RoomName)
}

func TestRecordGame_WrapsWriteError(t *testing.T) {
	broker := errors.New("broker unreachable")
	p := newResultPublisher(&fakeWriter{err: broker}, "duel-service")

	err := p.RecordGame(t.Context(), domain.GameRecord{RoomID: "room-1"})

	require.ErrorIs(t, err, broker)
	require.Contains(t, err.Error(), "room-1")
}
