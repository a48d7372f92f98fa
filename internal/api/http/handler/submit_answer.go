package handler

import (
	"context"

	"duel-service/domain"
	httpUsecase "duel-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type SubmitAnswerRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid"`
	Answer string `json:"answer" validate:"required,max=128"`
}

type SubmitAnswerHandler struct {
	usecase httpUsecase.SubmitAnswerUseCase
}

func NewSubmitAnswerHandler(usecase httpUsecase.SubmitAnswerUseCase) *SubmitAnswerHandler {
	return &SubmitAnswerHandler{usecase: usecase}
}

func (h *SubmitAnswerHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitAnswerRequest) (*domain.AnswerResult, int, error) {
	accountID, _, err := caller(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}

	res, status, err := h.usecase.Execute(ctx, req.RoomID, accountID, req.Answer)
	if err != nil {
		return nil, status, err
	}
	return &res, status, nil
}
