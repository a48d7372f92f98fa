package httpUsecase

import (
	"context"
	"net/http"

	"duel-service/internal/api/game"
)

type EndRoundUseCase interface {
	Execute(ctx context.Context, roomID string) (game.RoundOutcome, int, error)
}

type endRoundUseCase struct {
	engine RoomEngine
}

func NewEndRoundUseCase(engine RoomEngine) EndRoundUseCase {
	return &endRoundUseCase{engine: engine}
}

func (u *endRoundUseCase) Execute(ctx context.Context, roomID string) (game.RoundOutcome, int, error) {
	out, err := u.engine.ForceEndRound(ctx, roomID)
	if err != nil {
		return game.RoundOutcome{}, StatusFor(err), err
	}
	return out, http.StatusOK, nil
}
