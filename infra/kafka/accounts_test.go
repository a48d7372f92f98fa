package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeOpener struct {
	mu       sync.Mutex
	opened   map[string]int64
	failures int
}

func (f *fakeOpener) OpenAccount(_ context.Context, accountID string, balance int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("db down")
	}
	if f.opened == nil {
		f.opened = make(map[string]int64)
	}
	f.opened[accountID] = balance
	return nil
}

// fakeReader hands out msgs in order and then blocks until ctx is done.
type fakeReader struct {
	msgs      []kafka.Message
	committed []int64
	mu        sync.Mutex
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.msgs) > 0 {
		m := r.msgs[0]
		r.msgs = r.msgs[1:]
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) commits() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.committed...)
}

func accountEvent(t *testing.T, typ string, data AccountCreated) []byte {
	t.Helper()
	payload, err := json.Marshal(data)
	require.NoError(t, err)
	b, err := json.Marshal(Message{ID: "evt-1", Type: typ, Source: "user-service", Timestamp: time.Now(), Payload: payload})
	require.NoError(t, err)
	return b
}

func TestHandle_OpensAccount(t *testing.T) {
	opener := &fakeOpener{}
	c := newAccountConsumer(&fakeReader{}, opener, 100000, 1, zaptest.NewLogger(t))

	require.NoError(t, c.Handle(t.Context(), accountEvent(t, TypeAccountCreated, AccountCreated{AccountID: "acc-1", InitialBalance: 5000})))
	require.NoError(t, c.Handle(t.Context(), accountEvent(t, TypeAccountCreated, AccountCreated{AccountID: "acc-2"})))

	require.Equal(t, map[string]int64{"acc-1": 5000, "acc-2": 100000}, opener.opened)
}

func TestHandle_IgnoresOtherTypes(t *testing.T) {
	opener := &fakeOpener{}
	c := newAccountConsumer(&fakeReader{}, opener, 100, 1, zaptest.NewLogger(t))

	require.NoError(t, c.Handle(t.Context(), accountEvent(t, "account_deleted", AccountCreated{AccountID: "acc-1"})))
	require.Empty(t, opener.opened)
}

func TestHandle_MalformedIsPermanent(t *testing.T) {
	c := newAccountConsumer(&fakeReader{}, &fakeOpener{}, 100, 1, zaptest.NewLogger(t))

	var perm permanentError
	require.ErrorAs(t, c.Handle(t.Context(), []byte("{not json")), &perm)
	require.ErrorAs(t, c.Handle(t.Context(), accountEvent(t, TypeAccountCreated, AccountCreated{})), &perm)
}

func TestRun_RetriesThenCommits(t *testing.T) {
	// Given one message whose first attempt fails and one that is garbage
	reader := &fakeReader{msgs: []kafka.Message{
		{Offset: 1, Value: accountEvent(t, TypeAccountCreated, AccountCreated{AccountID: "acc-1"})},
		{Offset: 2, Value: []byte("garbage")},
	}}
	opener := &fakeOpener{failures: 1}
	c := newAccountConsumer(reader, opener, 700, 3, zaptest.NewLogger(t))
	c.retryBackoff = time.Millisecond

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	// When both are consumed
	require.Eventually(t, func() bool { return len(reader.commits()) == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	// Then the account was opened on retry and both offsets were committed
	require.NoError(t, <-done)
	require.Equal(t, []int64{1, 2}, reader.commits())
	opener.mu.Lock()
	defer opener.mu.Unlock()
	require.Equal(t, int64(700), opener.opened["acc-1"])
}
