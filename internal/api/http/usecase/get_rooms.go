package httpUsecase

import (
	"context"
	"net/http"

	"duel-service/domain"
)

type GetRoomsUseCase interface {
	List(ctx context.Context) ([]domain.RoomSummary, int, error)
	Get(ctx context.Context, roomID string) (domain.RoomSnapshot, int, error)
}

type getRoomsUseCase struct {
	engine RoomEngine
}

func NewGetRoomsUseCase(engine RoomEngine) GetRoomsUseCase {
	return &getRoomsUseCase{engine: engine}
}

func (u *getRoomsUseCase) List(ctx context.Context) ([]domain.RoomSummary, int, error) {
	return u.engine.ListJoinable(), http.StatusOK, nil
}

func (u *getRoomsUseCase) Get(ctx context.Context, roomID string) (domain.RoomSnapshot, int, error) {
	room, err := u.engine.GetRoom(roomID)
	if err != nil {
		return domain.RoomSnapshot{}, StatusFor(err), err
	}
	return room, http.StatusOK, nil
}
