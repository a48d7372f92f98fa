package handler

import (
	"context"

	"duel-service/domain"
	httpUsecase "duel-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type StartGameRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid"`
}

type StartGameResponse struct {
	Room domain.RoomSnapshot `json:"room"`
}

type StartGameHandler struct {
	usecase httpUsecase.StartGameUseCase
}

func NewStartGameHandler(usecase httpUsecase.StartGameUseCase) *StartGameHandler {
	return &StartGameHandler{usecase: usecase}
}

func (h *StartGameHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *StartGameRequest) (*StartGameResponse, int, error) {
	accountID, _, err := caller(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	room, status, err := h.usecase.Execute(ctx, req.RoomID, accountID)
	if err != nil {
		return nil, status, err
	}
	return &StartGameResponse{Room: room}, status, nil
}
