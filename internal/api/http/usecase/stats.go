package httpUsecase

import (
	"context"
	"net/http"

	"duel-service/domain"
	"duel-service/internal/api/game"
)

type StatsUseCase interface {
	Leaderboard(ctx context.Context, limit int) ([]game.PlayerStats, int, error)
	History(ctx context.Context, limit int) ([]domain.GameRecord, int, error)
	Balance(ctx context.Context, accountID string) (int64, int, error)
	Summary(ctx context.Context) (game.Summary, int, error)
}

type statsUseCase struct {
	stats  StatsReader
	ledger BalanceReader
}

func NewStatsUseCase(stats StatsReader, ledger BalanceReader) StatsUseCase {
	return &statsUseCase{stats: stats, ledger: ledger}
}

func (u *statsUseCase) Leaderboard(ctx context.Context, limit int) ([]game.PlayerStats, int, error) {
	return u.stats.Top(limit), http.StatusOK, nil
}

func (u *statsUseCase) History(ctx context.Context, limit int) ([]domain.GameRecord, int, error) {
	return u.stats.History(limit), http.StatusOK, nil
}

func (u *statsUseCase) Balance(ctx context.Context, accountID string) (int64, int, error) {
	b, err := u.ledger.BalanceOf(ctx, accountID)
	if err != nil {
		return 0, StatusFor(err), err
	}
	return b, http.StatusOK, nil
}

func (u *statsUseCase) Summary(ctx context.Context) (game.Summary, int, error) {
	return u.stats.Summary(), http.StatusOK, nil
}
