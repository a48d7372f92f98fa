package httpUsecase

import (
	"context"
	"net/http"
)

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, roomID, accountID string) (int, error)
}

type leaveRoomUseCase struct {
	engine RoomEngine
}

func NewLeaveRoomUseCase(engine RoomEngine) LeaveRoomUseCase {
	return &leaveRoomUseCase{engine: engine}
}

func (u *leaveRoomUseCase) Execute(ctx context.Context, roomID, accountID string) (int, error) {
	if err := u.engine.LeaveRoom(ctx, roomID, accountID); err != nil {
		return StatusFor(err), err
	}
	return http.StatusOK, nil
}
