package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"duel-service/domain"
)

func (r *Repository) RecordGame(ctx context.Context, rec domain.GameRecord) error {
	rankings, err := json.Marshal(rec.Rankings)
	if err != nil {
		return fmt.Errorf("failed to marshal rankings: %w", err)
	}
	receipts, err := json.Marshal(rec.Receipts)
	if err != nil {
		return fmt.Errorf("failed to marshal receipts: %w", err)
	}
	var winner *string
	if rec.Winner != nil {
		winner = &rec.Winner.AccountID
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO game_results (room_id, room_name, finished_at, player_count, entry_fee, prize_pool,
			house_take, forfeited, winner_account_id, winner_amount, rankings, receipts)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (room_id) DO NOTHING`,
		rec.RoomID, rec.RoomName, rec.FinishedAt, rec.PlayerCount, rec.EntryFee, rec.PrizePool,
		rec.HouseTake, rec.Forfeited, winner, rec.WinnerAmount, rankings, receipts,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game result: %w", err)
	}
	return nil
}
