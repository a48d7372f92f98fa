package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidEntryFee   = errors.New("invalid entry fee")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomNotJoinable   = errors.New("room not joinable")
	ErrAlreadyInRoom     = errors.New("already in room")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrRoomNotPlaying    = errors.New("room not playing")
	ErrNoActivePuzzle    = errors.New("no active puzzle")
	ErrRoundExpired      = errors.New("round expired")
	ErrNotHost           = errors.New("not host")
	ErrNotEnoughPlayers  = errors.New("not enough players")
	ErrGameNotFinished   = errors.New("game not finished")
	ErrPayoutIssued      = errors.New("payout already issued")
	ErrStaleRound        = errors.New("stale round")
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	ErrPuzzleUnavailable = errors.New("puzzle unavailable")
)
