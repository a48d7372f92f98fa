package handler

import (
	"context"

	"duel-service/domain"
	httpUsecase "duel-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type RoundAttemptsRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid"`
	Round  int    `params:"round" validate:"required,min=1"`
}

type RoundAttemptsResponse struct {
	RoomID  string                `json:"roomId"`
	Round   int                   `json:"round"`
	Records []domain.AnswerRecord `json:"records"`
}

// RoundAttemptsHandler serves the answer audit of one round, late attempts included.
type RoundAttemptsHandler struct {
	usecase httpUsecase.RoundAttemptsUseCase
}

func NewRoundAttemptsHandler(usecase httpUsecase.RoundAttemptsUseCase) *RoundAttemptsHandler {
	return &RoundAttemptsHandler{usecase: usecase}
}

func (h *RoundAttemptsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *RoundAttemptsRequest) (*RoundAttemptsResponse, int, error) {
	records, status, err := h.usecase.Execute(ctx, req.RoomID, req.Round)
	if err != nil {
		return nil, status, err
	}
	return &RoundAttemptsResponse{RoomID: req.RoomID, Round: req.Round, Records: records}, status, nil
}
