package handler

import (
	"context"

	"duel-service/domain"
	httpUsecase "duel-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type JoinRoomRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid"`
}

type JoinRoomResponse struct {
	Room domain.RoomSnapshot `json:"room"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{usecase: usecase}
}

func (h *JoinRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *JoinRoomRequest) (*JoinRoomResponse, int, error) {
	accountID, name, err := caller(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	room, status, err := h.usecase.Execute(ctx, req.RoomID, accountID, name)
	if err != nil {
		return nil, status, err
	}
	return &JoinRoomResponse{Room: room}, status, nil
}
