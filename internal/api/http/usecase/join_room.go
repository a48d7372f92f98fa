package httpUsecase

import (
	"context"
	"net/http"

	"duel-service/domain"
	"duel-service/internal/api/game"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, roomID, accountID, name string) (domain.RoomSnapshot, int, error)
}

type joinRoomUseCase struct {
	engine RoomEngine
}

func NewJoinRoomUseCase(engine RoomEngine) JoinRoomUseCase {
	return &joinRoomUseCase{engine: engine}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, roomID, accountID, name string) (domain.RoomSnapshot, int, error) {
	room, err := u.engine.JoinRoom(ctx, roomID, game.JoinInput{
		AccountID: accountID,
		PlayerID:  accountID,
		Name:      name,
	})
	if err != nil {
		return domain.RoomSnapshot{}, StatusFor(err), err
	}
	return room, http.StatusCreated, nil
}
