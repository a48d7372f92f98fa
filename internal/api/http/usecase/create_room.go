package httpUsecase

import (
	"context"
	"net/http"

	"duel-service/domain"
	"duel-service/internal/api/game"
)

type CreateRoomUseCase interface {
	Execute(ctx context.Context, accountID, name, roomName string, entryFee int64) (domain.RoomSnapshot, int, error)
}

type createRoomUseCase struct {
	engine RoomEngine
}

func NewCreateRoomUseCase(engine RoomEngine) CreateRoomUseCase {
	return &createRoomUseCase{engine: engine}
}

func (u *createRoomUseCase) Execute(ctx context.Context, accountID, name, roomName string, entryFee int64) (domain.RoomSnapshot, int, error) {
	room, err := u.engine.CreateRoom(ctx, game.CreateRoomInput{
		Name:          roomName,
		EntryFee:      entryFee,
		HostAccountID: accountID,
		HostPlayerID:  accountID,
		HostName:      name,
	})
	if err != nil {
		return domain.RoomSnapshot{}, StatusFor(err), err
	}
	return room, http.StatusCreated, nil
}
