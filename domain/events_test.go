package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// keys collects every object key in a decoded JSON value.
func keys(v any, out map[string]bool) {
	switch x := v.(type) {
	case map[string]any:
		for k, child := range x {
			out[k] = true
			keys(child, out)
		}
	case []any:
		for _, child := range x {
			keys(child, out)
		}
	}
}

func requireCamelCase(t *testing.T, payload any) map[string]bool {
	t.Helper()
	b, err := json.Marshal(NewEvent("payload", payload))
	require.NoError(t, err)
	var decoded any
	require.NoError(t, json.Unmarshal(b, &decoded))
	found := map[string]bool{}
	keys(decoded, found)
	for k := range found {
		require.NotContains(t, k, "_", "key %q in %s", k, b)
	}
	return found
}

func TestOutboundPayloads_UseCamelCaseKeys(t *testing.T) {
	now := time.Now()
	winner := RankedPlayer{PlayerID: "x", AccountID: "acc-x", Name: "x", Score: 50, Position: 1}
	room := RoomSnapshot{
		ID: "r1", EntryFee: 1000, PrizePool: 2000, Status: RoomFinished, Deadline: &now, StartedAt: &now, FinishedAt: &now,
		Players: []PlayerSnapshot{{ID: "x", AccountID: "acc-x", IsHost: true, JoinedAt: now}},
	}

	found := requireCamelCase(t, GameEnded{
		RoomID:      "r1",
		Winner:      &winner,
		Rankings:    []RankedPlayer{winner},
		PayoutTable: PayoutTable{PrizePool: 2000, PlayerCount: 2, HouseTake: 120, PlayerPot: 1880, ByPosition: map[int]int64{1: 1880}},
		Receipts:    []PayoutReceipt{{ID: "rc", PlayerID: "x", AccountID: "acc-x", Position: 1, Amount: 1880, Balance: 101880, Status: ReceiptCredited}},
	})
	for _, k := range []string{"winner", "rankings", "payoutTable", "byPosition", "prizePool", "playerPot", "houseTake"} {
		require.True(t, found[k], k)
	}

	requireCamelCase(t, RoomCreated{RoomID: "r1", Room: room})
	requireCamelCase(t, RoomsList{Rooms: []RoomSummary{{ID: "r1", EntryFee: 1000, PlayerCount: 1, MaxPlayers: 6, CreatedAt: now}}})
	requireCamelCase(t, GameRecord{RoomID: "r1", Winner: &winner, Rankings: []RankedPlayer{winner}, FinishedAt: now})
	requireCamelCase(t, BalanceUpdated{RoomID: "r1", NewBalance: 99000, Delta: -1000})
	requireCamelCase(t, AnswerRecord{PlayerID: "x", Attempts: []Attempt{{Raw: "a", SubmittedAt: now, Expired: true}}})
	requireCamelCase(t, PayoutResult{RoomID: "r1", IssuedAt: now})
	requireCamelCase(t, UnresolvedPayout{RoomID: "r1", AccountID: "acc-x", LastError: "boom", At: now})
}

func TestAnswerResult_Keys(t *testing.T) {
	found := requireCamelCase(t, AnswerResult{CanonicalAnswer: "music house"})

	for _, k := range []string{"correct", "points", "attempts", "canonicalAnswer"} {
		require.True(t, found[k], k)
	}
}
