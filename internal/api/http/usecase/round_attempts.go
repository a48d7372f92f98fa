package httpUsecase

import (
	"context"
	"net/http"

	"duel-service/domain"
)

type RoundAttemptsUseCase interface {
	Execute(ctx context.Context, roomID string, round int) ([]domain.AnswerRecord, int, error)
}

type roundAttemptsUseCase struct {
	engine RoomEngine
}

func NewRoundAttemptsUseCase(engine RoomEngine) RoundAttemptsUseCase {
	return &roundAttemptsUseCase{engine: engine}
}

func (u *roundAttemptsUseCase) Execute(ctx context.Context, roomID string, round int) ([]domain.AnswerRecord, int, error) {
	records, err := u.engine.RoundAttempts(roomID, round)
	if err != nil {
		return nil, StatusFor(err), err
	}
	return records, http.StatusOK, nil
}
