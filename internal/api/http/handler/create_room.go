package handler

import (
	"context"

	"duel-service/domain"
	httpUsecase "duel-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreateRoomRequest struct {
	Name     string `json:"name" validate:"max=64"`
	EntryFee int64  `json:"entryFee" validate:"required,gt=0"`
}

type CreateRoomResponse struct {
	RoomID string              `json:"roomId"`
	Room   domain.RoomSnapshot `json:"room"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{usecase: usecase}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*CreateRoomResponse, int, error) {
	accountID, name, err := caller(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	room, status, err := h.usecase.Execute(ctx, accountID, name, req.Name, req.EntryFee)
	if err != nil {
		return nil, status, err
	}
	return &CreateRoomResponse{RoomID: room.ID, Room: room}, status, nil
}
