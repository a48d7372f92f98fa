package domain

import "time"

type Attempt struct {
	Raw             string    `json:"raw"`
	Normalized      string    `json:"normalized"`
	Correct         bool      `json:"correct"`
	Expired         bool      `json:"expired"`
	SubmittedAt     time.Time `json:"submittedAt"`
	TimeRemainingMs int64     `json:"timeRemainingMs"`
}

// AnswerRecord holds one player's attempts for a single round. Scored flips
// to true at most once.
type AnswerRecord struct {
	PlayerID string    `json:"playerId"`
	Round    int       `json:"round"`
	Attempts []Attempt `json:"attempts"`
	Scored   bool      `json:"scored"`
	Points   int       `json:"points"`
}

type AnswerResult struct {
	RoomID          string `json:"roomId"`
	PlayerID        string `json:"playerId"`
	PlayerName      string `json:"playerName"`
	Round           int    `json:"round"`
	Correct         bool   `json:"correct"`
	Points          int    `json:"points"`
	Attempts        int    `json:"attempts"`
	FirstCorrect    bool   `json:"isFirstCorrect"`
	CanonicalAnswer string `json:"canonicalAnswer"`
	YourAnswer      string `json:"yourAnswer"`
	TimeRemainingMs int64  `json:"timeRemainingMs"`
	Message         string `json:"message"`
}
