package game

import (
	"fmt"
	"time"

	"duel-service/domain"

	"github.com/shopspring/decimal"
)

type Settings struct {
	MinEntryFee    int64
	MaxEntryFee    int64
	MaxPlayers     int
	TotalRounds    int
	RoundDuration  time.Duration
	SettleDelay    time.Duration
	CleanupGrace   time.Duration
	HouseEdge      decimal.Decimal
	HostOnlyStart  bool
	AllowSoloStart bool
	PayoutAttempts int
	PayoutBackoff  time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		MinEntryFee:    500,
		MaxEntryFee:    20000,
		MaxPlayers:     6,
		TotalRounds:    5,
		RoundDuration:  30 * time.Second,
		SettleDelay:    3 * time.Second,
		CleanupGrace:   10 * time.Second,
		HouseEdge:      decimal.RequireFromString("0.06"),
		HostOnlyStart:  true,
		PayoutAttempts: 3,
		PayoutBackoff:  200 * time.Millisecond,
	}
}

func (s Settings) Validate() error {
	switch {
	case s.MinEntryFee <= 0 || s.MaxEntryFee < s.MinEntryFee:
		return fmt.Errorf("%w: entry fee range %d..%d", domain.ErrInvalidInput, s.MinEntryFee, s.MaxEntryFee)
	case s.MaxPlayers < 1:
		return fmt.Errorf("%w: max players %d", domain.ErrInvalidInput, s.MaxPlayers)
	case s.TotalRounds < 1:
		return fmt.Errorf("%w: total rounds %d", domain.ErrInvalidInput, s.TotalRounds)
	case s.RoundDuration <= 0:
		return fmt.Errorf("%w: round duration %s", domain.ErrInvalidInput, s.RoundDuration)
	case s.SettleDelay < 0 || s.CleanupGrace < 0:
		return fmt.Errorf("%w: negative delay", domain.ErrInvalidInput)
	case s.HouseEdge.IsNegative() || s.HouseEdge.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return fmt.Errorf("%w: house edge %s", domain.ErrInvalidInput, s.HouseEdge)
	case s.PayoutAttempts < 1:
		return fmt.Errorf("%w: payout attempts %d", domain.ErrInvalidInput, s.PayoutAttempts)
	}
	return nil
}

func (s Settings) MinPlayersToStart() int {
	if s.AllowSoloStart {
		return 1
	}
	return 2
}

// TierForRound maps a round number to its puzzle difficulty.
func TierForRound(round int) domain.Difficulty {
	switch {
	case round <= 2:
		return domain.DifficultyEasy
	case round <= 4:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyHard
	}
}
