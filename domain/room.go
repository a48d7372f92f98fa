package domain

import "time"

type RoomStatus string

const (
	RoomWaiting  RoomStatus = "waiting"
	RoomPlaying  RoomStatus = "playing"
	RoomFinished RoomStatus = "finished"
)

type PlayerSnapshot struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	IsHost    bool      `json:"isHost"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// RoomSnapshot is a copy of a room's state; it never aliases session internals.
type RoomSnapshot struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	EntryFee     int64            `json:"entryFee"`
	PrizePool    int64            `json:"prizePool"`
	Forfeited    int64            `json:"forfeited,omitempty"`
	MaxPlayers   int              `json:"maxPlayers"`
	Status       RoomStatus       `json:"status"`
	CurrentRound int              `json:"currentRound"`
	TotalRounds  int              `json:"totalRounds"`
	RoundOpen    bool             `json:"roundOpen"`
	Deadline     *time.Time       `json:"deadline,omitempty"`
	HostID       string           `json:"hostId"`
	Players      []PlayerSnapshot `json:"players"`
	CreatedAt    time.Time        `json:"createdAt"`
	StartedAt    *time.Time       `json:"startedAt,omitempty"`
	FinishedAt   *time.Time       `json:"finishedAt,omitempty"`
}

type RoomSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	EntryFee    int64     `json:"entryFee"`
	PlayerCount int       `json:"playerCount"`
	MaxPlayers  int       `json:"maxPlayers"`
	CreatedAt   time.Time `json:"createdAt"`
}
