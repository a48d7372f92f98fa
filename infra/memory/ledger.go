package memory

import (
	"context"
	"fmt"
	"sync"

	"duel-service/domain"
)

// Ledger is an in-process balance store. Accounts are opened lazily with the
// starting balance on first use.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]int64
	starting int64
}

func NewLedger(startingBalance int64) *Ledger {
	return &Ledger{
		balances: make(map[string]int64),
		starting: startingBalance,
	}
}

func (l *Ledger) accountLocked(accountID string) int64 {
	b, ok := l.balances[accountID]
	if !ok {
		b = l.starting
		l.balances[accountID] = b
	}
	return b
}

// OpenAccount creates accountID with balance if it does not exist yet.
func (l *Ledger) OpenAccount(_ context.Context, accountID string, balance int64) error {
	if accountID == "" {
		return fmt.Errorf("%w: empty account id", domain.ErrInvalidInput)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.balances[accountID]; !ok {
		l.balances[accountID] = balance
	}
	return nil
}

func (l *Ledger) Reserve(_ context.Context, accountID string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount %d", domain.ErrInvalidInput, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.accountLocked(accountID)
	if b < amount {
		return fmt.Errorf("%w: balance %d, need %d", domain.ErrInsufficientFunds, b, amount)
	}
	l.balances[accountID] = b - amount
	return nil
}

func (l *Ledger) Credit(_ context.Context, accountID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount %d", domain.ErrInvalidInput, amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.accountLocked(accountID) + amount
	l.balances[accountID] = b
	return b, nil
}

func (l *Ledger) BalanceOf(_ context.Context, accountID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.accountLocked(accountID), nil
}
