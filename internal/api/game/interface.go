package game

import (
	"context"

	"duel-service/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=interface.go -destination=../../../mocks/mock_game.go -package=mocks

// BalanceLedger is the external balance store. Reserve and Credit must be atomic per account.
type BalanceLedger interface {
	// Reserve debits amount or fails with domain.ErrInsufficientFunds.
	Reserve(ctx context.Context, accountID string, amount int64) error
	Credit(ctx context.Context, accountID string, amount int64) (int64, error)
	BalanceOf(ctx context.Context, accountID string) (int64, error)
}

type PuzzleProvider interface {
	NextPuzzle(tier domain.Difficulty) (domain.Puzzle, error)
}

// Notifier delivers engine events to connected clients.
type Notifier interface {
	BroadcastRoom(roomID string, e domain.Event)
	SendToPlayer(roomID, playerID string, e domain.Event)
	BroadcastLobby(e domain.Event)
}

// Recorder receives every finished game exactly once.
type Recorder interface {
	RecordGame(ctx context.Context, record domain.GameRecord) error
}

// Reconciler stores credits that could not be issued automatically.
type Reconciler interface {
	RecordUnresolved(ctx context.Context, p domain.UnresolvedPayout) error
}
