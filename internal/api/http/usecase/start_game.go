package httpUsecase

import (
	"context"
	"net/http"

	"duel-service/domain"
)

type StartGameUseCase interface {
	Execute(ctx context.Context, roomID, accountID string) (domain.RoomSnapshot, int, error)
}

type startGameUseCase struct {
	engine RoomEngine
}

func NewStartGameUseCase(engine RoomEngine) StartGameUseCase {
	return &startGameUseCase{engine: engine}
}

func (u *startGameUseCase) Execute(ctx context.Context, roomID, accountID string) (domain.RoomSnapshot, int, error) {
	room, err := u.engine.StartGame(ctx, roomID, accountID)
	if err != nil {
		return domain.RoomSnapshot{}, StatusFor(err), err
	}
	return room, http.StatusOK, nil
}
