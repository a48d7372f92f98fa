package httpUsecase

import (
	"context"
	"net/http"

	"duel-service/domain"
)

type SubmitAnswerUseCase interface {
	Execute(ctx context.Context, roomID, accountID, answer string) (domain.AnswerResult, int, error)
}

type submitAnswerUseCase struct {
	engine RoomEngine
}

func NewSubmitAnswerUseCase(engine RoomEngine) SubmitAnswerUseCase {
	return &submitAnswerUseCase{engine: engine}
}

func (u *submitAnswerUseCase) Execute(ctx context.Context, roomID, accountID, answer string) (domain.AnswerResult, int, error) {
	res, err := u.engine.SubmitAnswer(ctx, roomID, accountID, answer)
	if err != nil {
		return domain.AnswerResult{}, StatusFor(err), err
	}
	return res, http.StatusOK, nil
}
