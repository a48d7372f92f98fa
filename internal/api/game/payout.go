package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"duel-service/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// shareTables holds the per-position split of the player pot by player count.
var shareTables = map[int][]decimal.Decimal{
	1: pct("1"),
	2: pct("1"),
	3: pct("0.70", "0.30"),
	4: pct("0.50", "0.30", "0.20"),
	5: pct("0.40", "0.25", "0.20", "0.15"),
	6: pct("0.35", "0.25", "0.20", "0.12", "0.08"),
}

const maxTabledPlayers = 6

func pct(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func sharesFor(playerCount int) []decimal.Decimal {
	if playerCount > maxTabledPlayers {
		playerCount = maxTabledPlayers
	}
	return shareTables[playerCount]
}

// CalculatePayouts splits prizePool into the house take and per-position
// amounts. Shares are floored to minor units and the remainder goes to first place,
// so the positions always sum to the player pot.
func CalculatePayouts(prizePool int64, playerCount int, houseEdge decimal.Decimal) domain.PayoutTable {
	table := domain.PayoutTable{
		PrizePool:   prizePool,
		PlayerCount: playerCount,
		ByPosition:  map[int]int64{},
	}
	if prizePool <= 0 || playerCount <= 0 {
		return table
	}

	house := decimal.NewFromInt(prizePool).Mul(houseEdge).Round(0).IntPart()
	table.HouseTake = house
	table.PlayerPot = prizePool - house

	pot := decimal.NewFromInt(table.PlayerPot)
	var issued int64
	for i, share := range sharesFor(playerCount) {
		amount := pot.Mul(share).Floor().IntPart()
		table.ByPosition[i+1] = amount
		issued += amount
	}
	table.ByPosition[1] += table.PlayerPot - issued
	return table
}

// RankPlayers orders by score descending; ties keep membership order.
func RankPlayers(players []domain.PlayerSnapshot) []domain.RankedPlayer {
	ordered := make([]domain.PlayerSnapshot, len(players))
	copy(ordered, players)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Score > ordered[j].Score })

	ranked := make([]domain.RankedPlayer, len(ordered))
	for i, p := range ordered {
		ranked[i] = domain.RankedPlayer{
			PlayerID:  p.ID,
			AccountID: p.AccountID,
			Name:      p.Name,
			Score:     p.Score,
			Position:  i + 1,
		}
	}
	return ranked
}

type PayoutEngine struct {
	ledger      BalanceLedger
	reconciler  Reconciler
	maxAttempts int
	backoff     time.Duration
	now         func() time.Time
	log         *zap.Logger
}

func NewPayoutEngine(ledger BalanceLedger, reconciler Reconciler, s Settings, log *zap.Logger) *PayoutEngine {
	return &PayoutEngine{
		ledger:      ledger,
		reconciler:  reconciler,
		maxAttempts: s.PayoutAttempts,
		backoff:     s.PayoutBackoff,
		now:         time.Now,
		log:         log.Named("payout"),
	}
}

// Distribute credits every ranked player with a non-zero amount once. The
// caller guarantees it runs at most once per room.
func (e *PayoutEngine) Distribute(ctx context.Context, roomID string, ranked []domain.RankedPlayer, table domain.PayoutTable) domain.PayoutResult {
	result := domain.PayoutResult{
		RoomID:   roomID,
		Rankings: ranked,
		Table:    table,
		IssuedAt: e.now(),
	}
	for _, p := range ranked {
		amount := table.ByPosition[p.Position]
		if amount <= 0 {
			continue
		}
		receipt := domain.PayoutReceipt{
			ID:        uuid.NewString(),
			PlayerID:  p.PlayerID,
			AccountID: p.AccountID,
			Position:  p.Position,
			Amount:    amount,
		}
		balance, attempts, err := e.credit(ctx, p.AccountID, amount)
		receipt.Attempts = attempts
		if err != nil {
			receipt.Status = domain.ReceiptUnresolved
			e.unresolved(ctx, roomID, p.AccountID, amount, "payout", attempts, err)
		} else {
			receipt.Status = domain.ReceiptCredited
			receipt.Balance = balance
			result.Paid += amount
		}
		result.Receipts = append(result.Receipts, receipt)
	}
	e.log.Info("payouts distributed",
		zap.String("room_id", roomID),
		zap.Int64("pool", table.PrizePool),
		zap.Int64("paid", result.Paid),
		zap.Int("receipts", len(result.Receipts)),
	)
	return result
}

// Refund returns an entry fee with the same retry policy as payouts and
// reports the balance after the credit.
func (e *PayoutEngine) Refund(ctx context.Context, roomID, accountID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, nil
	}
	balance, attempts, err := e.credit(ctx, accountID, amount)
	if err != nil {
		e.unresolved(ctx, roomID, accountID, amount, "refund", attempts, err)
		return 0, err
	}
	return balance, nil
}

func (e *PayoutEngine) credit(ctx context.Context, accountID string, amount int64) (int64, int, error) {
	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		balance, err := e.ledger.Credit(ctx, accountID, amount)
		if err == nil {
			return balance, attempt, nil
		}
		lastErr = err
		e.log.Warn("ledger credit failed",
			zap.String("account_id", accountID),
			zap.Int64("amount", amount),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == e.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return 0, attempt, errors.Join(lastErr, ctx.Err())
		case <-time.After(e.backoff * time.Duration(attempt)):
		}
	}
	return 0, e.maxAttempts, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, lastErr)
}

func (e *PayoutEngine) unresolved(ctx context.Context, roomID, accountID string, amount int64, reason string, attempts int, cause error) {
	e.log.Error("unresolved payout requires reconciliation",
		zap.String("room_id", roomID),
		zap.String("account_id", accountID),
		zap.Int64("amount", amount),
		zap.String("reason", reason),
		zap.Int("attempts", attempts),
		zap.Error(cause),
	)
	if e.reconciler == nil {
		return
	}
	entry := domain.UnresolvedPayout{
		RoomID:    roomID,
		AccountID: accountID,
		Amount:    amount,
		Reason:    reason,
		Attempts:  attempts,
		LastError: cause.Error(),
		At:        e.now(),
	}
	if err := e.reconciler.RecordUnresolved(context.WithoutCancel(ctx), entry); err != nil {
		e.log.Error("failed to record unresolved payout", zap.String("room_id", roomID), zap.Error(err))
	}
}
