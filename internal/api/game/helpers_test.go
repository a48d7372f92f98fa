package game

import (
	"sync"
	"testing"
	"time"

	"duel-service/domain"
	"duel-service/infra/memory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// fixedPuzzles serves the same puzzle for every tier.
type fixedPuzzles struct {
	puzzle domain.Puzzle
}

func (f fixedPuzzles) NextPuzzle(tier domain.Difficulty) (domain.Puzzle, error) {
	p := f.puzzle
	p.Difficulty = tier
	return p, nil
}

func musicHouse() domain.Puzzle {
	return domain.Puzzle{
		ID:      "p-music-house",
		Symbols: "🎵 + 🏠",
		Answer:  "music house",
		Points:  10,
	}
}

type fixture struct {
	registry *Registry
	ledger   *memory.Ledger
	clock    *fakeClock
}

func newFixture(t *testing.T, mutate func(*Settings)) fixture {
	t.Helper()
	s := DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	clock := newFakeClock()
	ledger := memory.NewLedger(100000)
	r, err := NewRegistry(Dependencies{
		Settings: s,
		Ledger:   ledger,
		Puzzles:  fixedPuzzles{puzzle: musicHouse()},
		Clock:    clock.Now,
		Log:      zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(r.Shutdown)
	return fixture{registry: r, ledger: ledger, clock: clock}
}

func (f fixture) createRoom(t *testing.T, fee int64, host string) domain.RoomSnapshot {
	t.Helper()
	room, err := f.registry.CreateRoom(t.Context(), CreateRoomInput{
		Name:          "room of " + host,
		EntryFee:      fee,
		HostAccountID: "acc-" + host,
		HostPlayerID:  host,
		HostName:      host,
	})
	require.NoError(t, err)
	return room
}

func (f fixture) join(t *testing.T, roomID, player string) (domain.RoomSnapshot, error) {
	t.Helper()
	return f.registry.JoinRoom(t.Context(), roomID, JoinInput{
		AccountID: "acc-" + player,
		PlayerID:  player,
		Name:      player,
	})
}

func (f fixture) balance(t *testing.T, player string) int64 {
	t.Helper()
	b, err := f.ledger.BalanceOf(t.Context(), "acc-"+player)
	require.NoError(t, err)
	return b
}
