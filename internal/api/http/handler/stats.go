package handler

import (
	"context"

	"duel-service/domain"
	"duel-service/internal/api/game"
	httpUsecase "duel-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type LeaderboardResponse struct {
	Players []game.PlayerStats `json:"players"`
}

type LeaderboardHandler struct {
	usecase httpUsecase.StatsUseCase
}

func NewLeaderboardHandler(usecase httpUsecase.StatsUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{usecase: usecase}
}

func (h *LeaderboardHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *LeaderboardRequest) (*LeaderboardResponse, int, error) {
	limit := req.Limit
	if limit == 0 {
		limit = 10
	}
	players, status, err := h.usecase.Leaderboard(ctx, limit)
	if err != nil {
		return nil, status, err
	}
	return &LeaderboardResponse{Players: players}, status, nil
}

type HistoryRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=1000"`
}

type HistoryResponse struct {
	Games []domain.GameRecord `json:"games"`
}

type HistoryHandler struct {
	usecase httpUsecase.StatsUseCase
}

func NewHistoryHandler(usecase httpUsecase.StatsUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: usecase}
}

func (h *HistoryHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *HistoryRequest) (*HistoryResponse, int, error) {
	limit := req.Limit
	if limit == 0 {
		limit = 50
	}
	games, status, err := h.usecase.History(ctx, limit)
	if err != nil {
		return nil, status, err
	}
	return &HistoryResponse{Games: games}, status, nil
}

type BalanceRequest struct{}

type BalanceResponse struct {
	AccountID string `json:"accountId"`
	Balance   int64  `json:"balance"`
}

type BalanceHandler struct {
	usecase httpUsecase.StatsUseCase
}

func NewBalanceHandler(usecase httpUsecase.StatsUseCase) *BalanceHandler {
	return &BalanceHandler{usecase: usecase}
}

func (h *BalanceHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *BalanceRequest) (*BalanceResponse, int, error) {
	accountID, _, err := caller(fbrCtx)
	if err != nil {
		return nil, fiber.StatusUnauthorized, err
	}
	b, status, err := h.usecase.Balance(ctx, accountID)
	if err != nil {
		return nil, status, err
	}
	return &BalanceResponse{AccountID: accountID, Balance: b}, status, nil
}

type SummaryRequest struct{}

type SummaryHandler struct {
	usecase httpUsecase.StatsUseCase
}

func NewSummaryHandler(usecase httpUsecase.StatsUseCase) *SummaryHandler {
	return &SummaryHandler{usecase: usecase}
}

func (h *SummaryHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SummaryRequest) (*game.Summary, int, error) {
	sum, status, err := h.usecase.Summary(ctx)
	if err != nil {
		return nil, status, err
	}
	return &sum, status, nil
}
