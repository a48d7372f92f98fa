package domain

import "time"

type PayoutTable struct {
	PrizePool   int64         `json:"prizePool"`
	PlayerCount int           `json:"playerCount"`
	HouseTake   int64         `json:"houseTake"`
	PlayerPot   int64         `json:"playerPot"`
	ByPosition  map[int]int64 `json:"byPosition"`
}

type RankedPlayer struct {
	PlayerID  string `json:"playerId"`
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Position  int    `json:"position"`
}

type ReceiptStatus string

const (
	ReceiptCredited   ReceiptStatus = "credited"
	ReceiptUnresolved ReceiptStatus = "unresolved"
)

type PayoutReceipt struct {
	ID        string        `json:"id"`
	PlayerID  string        `json:"playerId"`
	AccountID string        `json:"accountId"`
	Position  int           `json:"position"`
	Amount    int64         `json:"amount"`
	Balance   int64         `json:"balance"`
	Status    ReceiptStatus `json:"status"`
	Attempts  int           `json:"attempts"`
}

type PayoutResult struct {
	RoomID   string          `json:"roomId"`
	Rankings []RankedPlayer  `json:"rankings"`
	Table    PayoutTable     `json:"payoutTable"`
	Receipts []PayoutReceipt `json:"receipts"`
	Paid     int64           `json:"paid"`
	IssuedAt time.Time       `json:"issuedAt"`
}

// UnresolvedPayout is a credit the ledger kept rejecting; it needs manual reconciliation.
type UnresolvedPayout struct {
	RoomID    string    `json:"roomId"`
	AccountID string    `json:"accountId"`
	Amount    int64     `json:"amount"`
	Reason    string    `json:"reason"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"lastError"`
	At        time.Time `json:"at"`
}

type GameRecord struct {
	RoomID       string          `json:"roomId"`
	RoomName     string          `json:"roomName"`
	FinishedAt   time.Time       `json:"finishedAt"`
	PlayerCount  int             `json:"playerCount"`
	EntryFee     int64           `json:"entryFee"`
	PrizePool    int64           `json:"prizePool"`
	HouseTake    int64           `json:"houseTake"`
	PlayerPot    int64           `json:"playerPot"`
	Forfeited    int64           `json:"forfeited"`
	Winner       *RankedPlayer   `json:"winner,omitempty"`
	WinnerAmount int64           `json:"winnerAmount"`
	Rankings     []RankedPlayer  `json:"rankings"`
	Receipts     []PayoutReceipt `json:"receipts"`
}
