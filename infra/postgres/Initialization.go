package postgres

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

const (
	createBalancesTable = `
		CREATE TABLE IF NOT EXISTS balances (
			account_id VARCHAR(64) PRIMARY KEY,
			balance BIGINT NOT NULL CHECK (balance >= 0),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createLedgerEntriesTable = `
		CREATE TABLE IF NOT EXISTS ledger_entries (
			id BIGSERIAL PRIMARY KEY,
			account_id VARCHAR(64) REFERENCES balances(account_id) NOT NULL,
			delta BIGINT NOT NULL,
			balance_after BIGINT NOT NULL,
			kind VARCHAR(16) NOT NULL, -- 'reserve', 'credit', 'open'
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createUnresolvedPayoutsTable = `
		CREATE TABLE IF NOT EXISTS unresolved_payouts (
			id BIGSERIAL PRIMARY KEY,
			room_id VARCHAR(64) NOT NULL,
			account_id VARCHAR(64) NOT NULL,
			amount BIGINT NOT NULL,
			reason VARCHAR(16) NOT NULL, -- 'payout', 'refund'
			attempts INT NOT NULL,
			last_error TEXT,
			resolved BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createGameResultsTable = `
		CREATE TABLE IF NOT EXISTS game_results (
			room_id VARCHAR(64) PRIMARY KEY,
			room_name VARCHAR(100) NOT NULL,
			finished_at TIMESTAMP WITH TIME ZONE NOT NULL,
			player_count INT NOT NULL,
			entry_fee BIGINT NOT NULL,
			prize_pool BIGINT NOT NULL,
			house_take BIGINT NOT NULL,
			forfeited BIGINT NOT NULL DEFAULT 0,
			winner_account_id VARCHAR(64),
			winner_amount BIGINT NOT NULL DEFAULT 0,
			rankings JSONB NOT NULL,
			receipts JSONB NOT NULL
		);`

	createIndexes = `
		CREATE INDEX IF NOT EXISTS idx_ledger_entries_account ON ledger_entries(account_id);
		CREATE INDEX IF NOT EXISTS idx_unresolved_payouts_open ON unresolved_payouts(resolved) WHERE resolved = FALSE;
		CREATE INDEX IF NOT EXISTS idx_game_results_finished ON game_results(finished_at DESC);`
)

func initDB(db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{"balances", createBalancesTable},
		{"ledger_entries", createLedgerEntriesTable},
		{"unresolved_payouts", createUnresolvedPayoutsTable},
		{"game_results", createGameResultsTable},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
		zap.L().Debug("table ready", zap.String("table", table.name))
	}

	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	zap.L().Info("database initialized")
	return nil
}
