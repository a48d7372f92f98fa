package postgres

import (
	"context"
	"fmt"

	"duel-service/domain"
)

func (r *Repository) RecordUnresolved(ctx context.Context, p domain.UnresolvedPayout) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO unresolved_payouts (room_id, account_id, amount, reason, attempts, last_error, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.RoomID, p.AccountID, p.Amount, p.Reason, p.Attempts, p.LastError, p.At,
	)
	if err != nil {
		return fmt.Errorf("failed to insert unresolved payout: %w", err)
	}
	return nil
}

func (r *Repository) ListUnresolved(ctx context.Context, limit int) ([]domain.UnresolvedPayout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT room_id, account_id, amount, reason, attempts, COALESCE(last_error, ''), created_at
		 FROM unresolved_payouts WHERE resolved = FALSE ORDER BY created_at LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query unresolved payouts: %w", err)
	}
	defer rows.Close()

	var out []domain.UnresolvedPayout
	for rows.Next() {
		var p domain.UnresolvedPayout
		if err := rows.Scan(&p.RoomID, &p.AccountID, &p.Amount, &p.Reason, &p.Attempts, &p.LastError, &p.At); err != nil {
			return nil, fmt.Errorf("failed to scan unresolved payout: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
