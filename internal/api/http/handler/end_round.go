package handler

import (
	"context"

	"duel-service/internal/api/game"
	httpUsecase "duel-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type EndRoundRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid"`
}

type EndRoundHandler struct {
	usecase httpUsecase.EndRoundUseCase
}

func NewEndRoundHandler(usecase httpUsecase.EndRoundUseCase) *EndRoundHandler {
	return &EndRoundHandler{usecase: usecase}
}

func (h *EndRoundHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *EndRoundRequest) (*game.RoundOutcome, int, error) {
	out, status, err := h.usecase.Execute(ctx, req.RoomID)
	if err != nil {
		return nil, status, err
	}
	return &out, status, nil
}
