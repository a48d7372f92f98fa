package game

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"duel-service/domain"
	"duel-service/infra/memory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fastSettings() Settings {
	s := DefaultSettings()
	s.RoundDuration = 60 * time.Millisecond
	s.SettleDelay = 5 * time.Millisecond
	s.CleanupGrace = 30 * time.Millisecond
	s.PayoutBackoff = time.Millisecond
	return s
}

func newFastRegistry(t *testing.T, ledger BalanceLedger) *Registry {
	t.Helper()
	r, err := NewRegistry(Dependencies{
		Settings: fastSettings(),
		Ledger:   ledger,
		Puzzles:  fixedPuzzles{puzzle: musicHouse()},
		Log:      zap.NewNop(),
	})
	require.NoError(t, err)
	t.Cleanup(r.Shutdown)
	return r
}

func TestScheduler_ScenarioA(t *testing.T) {
	ledger := memory.NewLedger(100000)
	r := newFastRegistry(t, ledger)
	ctx := t.Context()

	// Given two players in a $10 room
	room, err := r.CreateRoom(ctx, CreateRoomInput{EntryFee: 1000, HostAccountID: "acc-x", HostPlayerID: "x", HostName: "X"})
	require.NoError(t, err)
	_, err = r.JoinRoom(ctx, room.ID, JoinInput{AccountID: "acc-y", PlayerID: "y", Name: "Y"})
	require.NoError(t, err)
	s, err := r.lookup(room.ID)
	require.NoError(t, err)

	// When the game runs on the scheduler and only X answers
	_, err = r.StartGame(ctx, room.ID, "x")
	require.NoError(t, err)
	for round := 1; round <= 5; round++ {
		require.Eventually(t, func() bool {
			cur, open := s.CurrentRound()
			return cur == round && open
		}, time.Second, time.Millisecond, "round %d never opened", round)
		res, err := r.SubmitAnswer(ctx, room.ID, "x", "music house")
		require.NoError(t, err)
		require.Equal(t, 10, res.Points)
	}

	// Then the game finishes on its own and X takes the whole player pot
	require.Eventually(t, func() bool {
		_, ok := s.Result()
		return ok
	}, time.Second, time.Millisecond)
	res, _ := s.Result()
	require.Equal(t, "x", res.Rankings[0].PlayerID)
	require.Equal(t, 50, res.Rankings[0].Score)
	require.Equal(t, 0, res.Rankings[1].Score)
	require.Len(t, res.Receipts, 1)
	require.Equal(t, int64(1880), res.Receipts[0].Amount)

	bx, _ := ledger.BalanceOf(ctx, "acc-x")
	by, _ := ledger.BalanceOf(ctx, "acc-y")
	require.Equal(t, int64(99000+1880), bx)
	require.Equal(t, int64(99000), by)

	// And the room is cleaned up after the grace period
	require.Eventually(t, func() bool { return r.Count() == 0 }, time.Second, time.Millisecond)
}

func TestScheduler_RoundEndsWithoutAnswers(t *testing.T) {
	r := newFastRegistry(t, memory.NewLedger(100000))
	room, err := r.CreateRoom(t.Context(), CreateRoomInput{EntryFee: 1000, HostAccountID: "acc-x", HostPlayerID: "x", HostName: "X"})
	require.NoError(t, err)
	_, err = r.JoinRoom(t.Context(), room.ID, JoinInput{AccountID: "acc-y", PlayerID: "y", Name: "Y"})
	require.NoError(t, err)
	s, err := r.lookup(room.ID)
	require.NoError(t, err)

	_, err = r.StartGame(t.Context(), room.ID, "x")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		cur, open := s.CurrentRound()
		return cur == 2 && open
	}, time.Second, time.Millisecond)
}

func TestScheduler_ScenarioD_TimerForDeletedRoom(t *testing.T) {
	r := newFastRegistry(t, memory.NewLedger(100000))
	room, err := r.CreateRoom(t.Context(), CreateRoomInput{EntryFee: 1000, HostAccountID: "acc-x", HostPlayerID: "x", HostName: "X"})
	require.NoError(t, err)
	_, err = r.JoinRoom(t.Context(), room.ID, JoinInput{AccountID: "acc-y", PlayerID: "y", Name: "Y"})
	require.NoError(t, err)
	_, err = r.StartGame(t.Context(), room.ID, "x")
	require.NoError(t, err)

	// Given every player leaves mid-round
	require.NoError(t, r.LeaveRoom(t.Context(), room.ID, "x"))
	require.NoError(t, r.LeaveRoom(t.Context(), room.ID, "y"))
	require.False(t, r.Scheduler().Pending(room.ID))

	// When a timer captured before deletion fires anyway
	r.Scheduler().ScheduleRoundEnd(room.ID, 1, time.Now().Add(5*time.Millisecond))

	// Then it is a no-op
	require.Eventually(t, func() bool { return !r.Scheduler().Pending(room.ID) }, time.Second, time.Millisecond)
	_, err = r.CloseRound(t.Context(), room.ID, 1)
	require.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, err = r.OpenRound(t.Context(), room.ID, 2)
	require.ErrorIs(t, err, domain.ErrRoomNotFound)
	require.Zero(t, r.Count())
}

func TestForceEndRound_DoesNotDoubleAdvance(t *testing.T) {
	s := DefaultSettings()
	s.SettleDelay = time.Hour
	r, err := NewRegistry(Dependencies{
		Settings: s,
		Ledger:   memory.NewLedger(100000),
		Puzzles:  fixedPuzzles{puzzle: musicHouse()},
		Log:      zap.NewNop(),
	})
	require.NoError(t, err)
	t.Cleanup(r.Shutdown)
	room, err := r.CreateRoom(t.Context(), CreateRoomInput{EntryFee: 1000, HostAccountID: "acc-x", HostPlayerID: "x", HostName: "X"})
	require.NoError(t, err)
	_, err = r.JoinRoom(t.Context(), room.ID, JoinInput{AccountID: "acc-y", PlayerID: "y", Name: "Y"})
	require.NoError(t, err)
	_, err = r.StartGame(t.Context(), room.ID, "x")
	require.NoError(t, err)

	out, err := r.ForceEndRound(t.Context(), room.ID)
	require.NoError(t, err)
	require.Equal(t, 1, out.Round)
	require.Equal(t, 2, out.NextRound)
	require.Equal(t, "music house", out.CanonicalAnswer)

	// The scheduled tick for the same round arrives late
	_, err = r.CloseRound(t.Context(), room.ID, 1)
	require.ErrorIs(t, err, domain.ErrStaleRound)
	_, err = r.ForceEndRound(t.Context(), room.ID)
	require.ErrorIs(t, err, domain.ErrNoActivePuzzle)

	snap, err := r.GetRoom(room.ID)
	require.NoError(t, err)
	require.Equal(t, 1, snap.CurrentRound)
	require.True(t, r.Scheduler().Pending(room.ID))
}

type countingDriver struct {
	closes atomic.Int32
}

func (d *countingDriver) CloseRound(context.Context, string, int) (RoundOutcome, error) {
	d.closes.Add(1)
	return RoundOutcome{}, domain.ErrStaleRound
}

func (d *countingDriver) OpenRound(context.Context, string, int) (time.Time, error) {
	return time.Time{}, domain.ErrStaleRound
}

func (d *countingDriver) ExpireRoom(context.Context, string) error { return nil }

func TestRoundScheduler_RescheduleReplacesTimer(t *testing.T) {
	d := &countingDriver{}
	sched := NewRoundScheduler(d, time.Millisecond, time.Millisecond, zap.NewNop())
	t.Cleanup(sched.Stop)

	sched.ScheduleRoundEnd("room", 1, time.Now().Add(20*time.Millisecond))
	sched.ScheduleRoundEnd("room", 1, time.Now().Add(20*time.Millisecond))

	require.Eventually(t, func() bool { return !sched.Pending("room") }, time.Second, time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, int32(1), d.closes.Load())
}

func TestRoundScheduler_StopCancelsEverything(t *testing.T) {
	d := &countingDriver{}
	sched := NewRoundScheduler(d, time.Millisecond, time.Millisecond, zap.NewNop())

	sched.ScheduleRoundEnd("a", 1, time.Now().Add(10*time.Millisecond))
	sched.ScheduleRoundEnd("b", 1, time.Now().Add(10*time.Millisecond))
	sched.Stop()
	sched.ScheduleRoundEnd("c", 1, time.Now())

	time.Sleep(40 * time.Millisecond)
	require.Zero(t, d.closes.Load())
	require.False(t, sched.Pending("c"))
}
