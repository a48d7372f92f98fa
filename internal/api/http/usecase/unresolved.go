package httpUsecase

import (
	"context"
	"fmt"
	"net/http"

	"duel-service/domain"
)

type UnresolvedPayoutsUseCase interface {
	Execute(ctx context.Context, limit int) ([]domain.UnresolvedPayout, int, error)
}

type unresolvedPayoutsUseCase struct {
	store UnresolvedReader
}

// NewUnresolvedPayoutsUseCase accepts a nil store; without postgres,
// unresolved payouts exist only in the error log.
func NewUnresolvedPayoutsUseCase(store UnresolvedReader) UnresolvedPayoutsUseCase {
	return &unresolvedPayoutsUseCase{store: store}
}

func (u *unresolvedPayoutsUseCase) Execute(ctx context.Context, limit int) ([]domain.UnresolvedPayout, int, error) {
	if u.store == nil {
		err := fmt.Errorf("%w: reconciliation store disabled", domain.ErrLedgerUnavailable)
		return nil, StatusFor(err), err
	}
	list, err := u.store.ListUnresolved(ctx, limit)
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
		return nil, StatusFor(err), err
	}
	if list == nil {
		list = []domain.UnresolvedPayout{}
	}
	return list, http.StatusOK, nil
}
