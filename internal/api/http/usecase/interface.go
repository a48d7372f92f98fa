package httpUsecase

import (
	"context"

	"duel-service/domain"
	"duel-service/internal/api/game"
)

type RoomEngine interface {
	CreateRoom(ctx context.Context, in game.CreateRoomInput) (domain.RoomSnapshot, error)
	JoinRoom(ctx context.Context, roomID string, in game.JoinInput) (domain.RoomSnapshot, error)
	LeaveRoom(ctx context.Context, roomID, playerID string) error
	StartGame(ctx context.Context, roomID, playerID string) (domain.RoomSnapshot, error)
	SubmitAnswer(ctx context.Context, roomID, playerID, answer string) (domain.AnswerResult, error)
	GetRoom(roomID string) (domain.RoomSnapshot, error)
	ListJoinable() []domain.RoomSummary
	ForceEndRound(ctx context.Context, roomID string) (game.RoundOutcome, error)
	RoundAttempts(roomID string, round int) ([]domain.AnswerRecord, error)
}

type BalanceReader interface {
	BalanceOf(ctx context.Context, accountID string) (int64, error)
}

type UnresolvedReader interface {
	ListUnresolved(ctx context.Context, limit int) ([]domain.UnresolvedPayout, error)
}

type StatsReader interface {
	Top(n int) []game.PlayerStats
	History(limit int) []domain.GameRecord
	Summary() game.Summary
}
