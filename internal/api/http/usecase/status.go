package httpUsecase

import (
	"errors"
	"net/http"

	"duel-service/domain"
)

// StatusFor maps engine errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidEntryFee):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrNotHost):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRoundExpired):
		return http.StatusGone
	case errors.Is(err, domain.ErrRoomNotJoinable),
		errors.Is(err, domain.ErrAlreadyInRoom),
		errors.Is(err, domain.ErrRoomNotPlaying),
		errors.Is(err, domain.ErrNoActivePuzzle),
		errors.Is(err, domain.ErrNotEnoughPlayers),
		errors.Is(err, domain.ErrGameNotFinished),
		errors.Is(err, domain.ErrPayoutIssued),
		errors.Is(err, domain.ErrStaleRound):
		return http.StatusConflict
	case errors.Is(err, domain.ErrLedgerUnavailable), errors.Is(err, domain.ErrPuzzleUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
