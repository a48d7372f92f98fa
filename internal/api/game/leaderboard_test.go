package game

import (
	"fmt"
	"testing"

	"duel-service/domain"

	"github.com/stretchr/testify/require"
)

func gameRecord(roomID string, fee int64, winner, loser string, prize int64) domain.GameRecord {
	w := domain.RankedPlayer{PlayerID: winner, AccountID: winner, Name: winner, Score: 30, Position: 1}
	return domain.GameRecord{
		RoomID:      roomID,
		PlayerCount: 2,
		EntryFee:    fee,
		PrizePool:   fee * 2,
		Winner:      &w,
		Rankings: []domain.RankedPlayer{
			w,
			{PlayerID: loser, AccountID: loser, Name: loser, Score: 10, Position: 2},
		},
		Receipts: []domain.PayoutReceipt{
			{AccountID: winner, Amount: prize, Status: domain.ReceiptCredited},
		},
	}
}

func TestLeaderboard_Stats(t *testing.T) {
	lb := NewLeaderboard()

	require.NoError(t, lb.RecordGame(t.Context(), gameRecord("r1", 1000, "ann", "bob", 1880)))
	require.NoError(t, lb.RecordGame(t.Context(), gameRecord("r2", 1000, "bob", "ann", 1880)))
	require.NoError(t, lb.RecordGame(t.Context(), gameRecord("r3", 500, "ann", "cid", 940)))

	ann, ok := lb.Stats("ann")
	require.True(t, ok)
	require.Equal(t, 3, ann.GamesPlayed)
	require.Equal(t, 2, ann.GamesWon)
	require.Equal(t, int64(2500), ann.TotalSpent)
	require.Equal(t, int64(2820), ann.TotalWinnings)
	require.InDelta(t, 70.0/3, ann.AverageScore, 1e-9)
	require.InDelta(t, 2.0/3, ann.WinRate, 1e-9)

	top := lb.Top(2)
	require.Len(t, top, 2)
	require.Equal(t, "ann", top[0].AccountID)
	require.Equal(t, "bob", top[1].AccountID)

	_, ok = lb.Stats("nobody")
	require.False(t, ok)
}

func TestLeaderboard_UnresolvedReceiptsAreNotWinnings(t *testing.T) {
	lb := NewLeaderboard()
	rec := gameRecord("r1", 1000, "ann", "bob", 1880)
	rec.Receipts[0].Status = domain.ReceiptUnresolved

	require.NoError(t, lb.RecordGame(t.Context(), rec))

	ann, _ := lb.Stats("ann")
	require.Zero(t, ann.TotalWinnings)
	require.Equal(t, 1, ann.GamesWon)
}

func TestLeaderboard_HistoryIsBoundedNewestFirst(t *testing.T) {
	lb := NewLeaderboard()
	for i := 0; i < historyLimit+25; i++ {
		require.NoError(t, lb.RecordGame(t.Context(), gameRecord(fmt.Sprintf("r%d", i), 500, "ann", "bob", 940)))
	}

	all := lb.History(0)
	require.Len(t, all, historyLimit)
	require.Equal(t, fmt.Sprintf("r%d", historyLimit+24), all[0].RoomID)
	require.Equal(t, "r25", all[len(all)-1].RoomID)

	require.Len(t, lb.History(5), 5)
}

func TestLeaderboard_Summary(t *testing.T) {
	lb := NewLeaderboard()
	require.Equal(t, Summary{}, lb.Summary())

	// Given two two-player games and one three-player game
	require.NoError(t, lb.RecordGame(t.Context(), gameRecord("r1", 1000, "ann", "bob", 1880)))
	require.NoError(t, lb.RecordGame(t.Context(), gameRecord("r2", 1000, "bob", "ann", 1880)))
	three := gameRecord("r3", 2000, "cid", "ann", 3948)
	three.PlayerCount = 3
	three.PrizePool = 6000
	three.Rankings = append(three.Rankings, domain.RankedPlayer{PlayerID: "dee", AccountID: "dee", Name: "dee", Position: 3})
	require.NoError(t, lb.RecordGame(t.Context(), three))

	// When the summary is read
	sum := lb.Summary()

	// Then it counts every game, distinct account and pooled fee
	require.Equal(t, 3, sum.TotalGames)
	require.Equal(t, 4, sum.TotalPlayers)
	require.Equal(t, int64(10000), sum.TotalVolume)
	require.InDelta(t, 7.0/3, sum.AverageGameSize, 1e-9)
}
