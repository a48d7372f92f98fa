package game

import (
	"context"
	"sort"
	"sync"

	"duel-service/domain"

	"github.com/samber/lo"
)

const historyLimit = 1000

type PlayerStats struct {
	AccountID     string  `json:"accountId"`
	Name          string  `json:"name"`
	GamesPlayed   int     `json:"gamesPlayed"`
	GamesWon      int     `json:"gamesWon"`
	TotalSpent    int64   `json:"totalSpent"`
	TotalWinnings int64   `json:"totalWinnings"`
	TotalScore    int     `json:"totalScore"`
	AverageScore  float64 `json:"averageScore"`
	WinRate       float64 `json:"winRate"`
}

// Summary aggregates every game recorded since start, not only the history window.
type Summary struct {
	TotalGames      int     `json:"totalGames"`
	TotalPlayers    int     `json:"totalPlayers"`
	TotalVolume     int64   `json:"totalVolume"`
	AverageGameSize float64 `json:"averageGameSize"`
}

// Leaderboard keeps per-account stats and the most recent finished games.
type Leaderboard struct {
	mu      sync.RWMutex
	stats   map[string]*PlayerStats
	history []domain.GameRecord

	games  int
	seats  int
	volume int64
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{stats: make(map[string]*PlayerStats)}
}

func (l *Leaderboard) RecordGame(_ context.Context, rec domain.GameRecord) error {
	won := map[string]int64{}
	for _, r := range rec.Receipts {
		if r.Status == domain.ReceiptCredited {
			won[r.AccountID] += r.Amount
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range rec.Rankings {
		st, ok := l.stats[p.AccountID]
		if !ok {
			st = &PlayerStats{AccountID: p.AccountID}
			l.stats[p.AccountID] = st
		}
		st.Name = p.Name
		st.GamesPlayed++
		st.TotalSpent += rec.EntryFee
		st.TotalScore += p.Score
		st.TotalWinnings += won[p.AccountID]
		if p.Position == 1 {
			st.GamesWon++
		}
		st.AverageScore = float64(st.TotalScore) / float64(st.GamesPlayed)
		st.WinRate = float64(st.GamesWon) / float64(st.GamesPlayed)
	}

	l.games++
	l.seats += rec.PlayerCount
	l.volume += rec.PrizePool
	l.history = append(l.history, rec)
	if over := len(l.history) - historyLimit; over > 0 {
		l.history = append([]domain.GameRecord(nil), l.history[over:]...)
	}
	return nil
}

// Top returns up to n accounts by total winnings, then games won.
func (l *Leaderboard) Top(n int) []PlayerStats {
	l.mu.RLock()
	all := lo.Map(lo.Values(l.stats), func(st *PlayerStats, _ int) PlayerStats { return *st })
	l.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].TotalWinnings != all[j].TotalWinnings {
			return all[i].TotalWinnings > all[j].TotalWinnings
		}
		if all[i].GamesWon != all[j].GamesWon {
			return all[i].GamesWon > all[j].GamesWon
		}
		return all[i].AccountID < all[j].AccountID
	})
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

func (l *Leaderboard) Stats(accountID string) (PlayerStats, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	st, ok := l.stats[accountID]
	if !ok {
		return PlayerStats{}, false
	}
	return *st, true
}

func (l *Leaderboard) Summary() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	sum := Summary{
		TotalGames:   l.games,
		TotalPlayers: len(l.stats),
		TotalVolume:  l.volume,
	}
	if l.games > 0 {
		sum.AverageGameSize = float64(l.seats) / float64(l.games)
	}
	return sum
}

// History returns finished games, newest first.
func (l *Leaderboard) History(limit int) []domain.GameRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.GameRecord, 0, len(l.history))
	for i := len(l.history) - 1; i >= 0; i-- {
		out = append(out, l.history[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
