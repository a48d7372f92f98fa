package handler

import (
	"context"

	"duel-service/domain"
	httpUsecase "duel-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type UnresolvedPayoutsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

type UnresolvedPayoutsResponse struct {
	Payouts []domain.UnresolvedPayout `json:"payouts"`
}

type UnresolvedPayoutsHandler struct {
	usecase httpUsecase.UnresolvedPayoutsUseCase
}

func NewUnresolvedPayoutsHandler(usecase httpUsecase.UnresolvedPayoutsUseCase) *UnresolvedPayoutsHandler {
	return &UnresolvedPayoutsHandler{usecase: usecase}
}

func (h *UnresolvedPayoutsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *UnresolvedPayoutsRequest) (*UnresolvedPayoutsResponse, int, error) {
	limit := req.Limit
	if limit == 0 {
		limit = 100
	}
	list, status, err := h.usecase.Execute(ctx, limit)
	if err != nil {
		return nil, status, err
	}
	return &UnresolvedPayoutsResponse{Payouts: list}, status, nil
}
