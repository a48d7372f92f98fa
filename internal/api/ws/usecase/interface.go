package wsUsecase

import (
	"context"

	"duel-service/domain"
	"duel-service/internal/api/game"
)

// Engine is the part of the room registry the gateway drives.
type Engine interface {
	CreateRoom(ctx context.Context, in game.CreateRoomInput) (domain.RoomSnapshot, error)
	JoinRoom(ctx context.Context, roomID string, in game.JoinInput) (domain.RoomSnapshot, error)
	StartGame(ctx context.Context, roomID, playerID string) (domain.RoomSnapshot, error)
	SubmitAnswer(ctx context.Context, roomID, playerID, answer string) (domain.AnswerResult, error)
	LeaveRoom(ctx context.Context, roomID, playerID string) error
	ListJoinable() []domain.RoomSummary
}

type Rankings interface {
	Top(n int) []game.PlayerStats
}

type Hub interface {
	Run(ctx context.Context)
	Serve(client *domain.Client)
	AttachRoom(client *domain.Client, roomID string)
	DetachRoom(client *domain.Client)
	SendToClient(client *domain.Client, e domain.Event) error
}
