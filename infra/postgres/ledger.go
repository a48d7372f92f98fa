package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"duel-service/domain"
)

const openAccount = `
	INSERT INTO balances (account_id, balance) VALUES ($1, $2)
	ON CONFLICT (account_id) DO NOTHING`

// OpenAccount creates the balance row if missing.
func (r *Repository) OpenAccount(ctx context.Context, accountID string, balance int64) error {
	if _, err := r.db.ExecContext(ctx, openAccount, accountID, balance); err != nil {
		return fmt.Errorf("%w: open account: %v", domain.ErrLedgerUnavailable, err)
	}
	return nil
}

func (r *Repository) Reserve(ctx context.Context, accountID string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount %d", domain.ErrInvalidInput, amount)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrLedgerUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, openAccount, accountID, r.startingBalance); err != nil {
		return fmt.Errorf("%w: open account: %v", domain.ErrLedgerUnavailable, err)
	}

	var balance int64
	err = tx.QueryRowContext(ctx,
		`SELECT balance FROM balances WHERE account_id = $1 FOR UPDATE`,
		accountID,
	).Scan(&balance)
	if err != nil {
		return fmt.Errorf("%w: query balance: %v", domain.ErrLedgerUnavailable, err)
	}
	if balance < amount {
		return fmt.Errorf("%w: balance %d, need %d", domain.ErrInsufficientFunds, balance, amount)
	}

	if err := applyDelta(ctx, tx, accountID, -amount, "reserve"); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrLedgerUnavailable, err)
	}
	return nil
}

func (r *Repository) Credit(ctx context.Context, accountID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount %d", domain.ErrInvalidInput, amount)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin: %v", domain.ErrLedgerUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, openAccount, accountID, r.startingBalance); err != nil {
		return 0, fmt.Errorf("%w: open account: %v", domain.ErrLedgerUnavailable, err)
	}
	if err := applyDelta(ctx, tx, accountID, amount, "credit"); err != nil {
		return 0, err
	}

	var balance int64
	if err := tx.QueryRowContext(ctx, `SELECT balance FROM balances WHERE account_id = $1`, accountID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("%w: read balance: %v", domain.ErrLedgerUnavailable, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit: %v", domain.ErrLedgerUnavailable, err)
	}
	return balance, nil
}

func applyDelta(ctx context.Context, tx *sql.Tx, accountID string, delta int64, kind string) error {
	var after int64
	err := tx.QueryRowContext(ctx,
		`UPDATE balances SET balance = balance + $2, updated_at = CURRENT_TIMESTAMP
		 WHERE account_id = $1 RETURNING balance`,
		accountID, delta,
	).Scan(&after)
	if err != nil {
		return fmt.Errorf("%w: update balance: %v", domain.ErrLedgerUnavailable, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO ledger_entries (account_id, delta, balance_after, kind) VALUES ($1, $2, $3, $4)`,
		accountID, delta, after, kind,
	)
	if err != nil {
		return fmt.Errorf("%w: ledger entry: %v", domain.ErrLedgerUnavailable, err)
	}
	return nil
}

func (r *Repository) BalanceOf(ctx context.Context, accountID string) (int64, error) {
	var balance int64
	err := r.db.QueryRowContext(ctx, `SELECT balance FROM balances WHERE account_id = $1`, accountID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return r.startingBalance, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: query balance: %v", domain.ErrLedgerUnavailable, err)
	}
	return balance, nil
}
