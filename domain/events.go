package domain

import "time"

// Event names exchanged with clients over the session gateway.
const (
	EventCreateRoom     = "create_room"
	EventJoinRoom       = "join_room"
	EventStartGame      = "start_game"
	EventSubmitAnswer   = "submit_answer"
	EventLeaveRoom      = "leave_room"
	EventGetRooms       = "get_rooms"
	EventGetLeaderboard = "get_leaderboard"
	EventPing           = "ping"

	EventRoomCreated     = "room_created"
	EventRoomJoined      = "room_joined"
	EventRoomUpdated     = "room_updated"
	EventGameStarted     = "game_started"
	EventQuestionUpdated = "question_updated"
	EventAnswerResult    = "answer_result"
	EventPlayerAnswered  = "player_answered"
	EventRoundEnded      = "round_ended"
	EventGameEnded       = "game_ended"
	EventRoomRemoved     = "room_removed"
	EventRoomsList       = "rooms_list"
	EventLeftRoom        = "left_room"
	EventPong            = "pong"
	EventLeaderboard     = "leaderboard"
	EventBalanceUpdated  = "balance_updated"
	EventError           = "error"
)

type Event struct {
	Type    string `json:"type"`
	Content any    `json:"content"`
}

func NewEvent(t string, content any) Event {
	return Event{Type: t, Content: content}
}

// Inbound requests. Identity fields (account, player) come from the connection, not the payload.

type CreateRoomRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=64"`
	EntryFee int64  `json:"entryFee" validate:"required,gt=0"`
}

type JoinRoomRequest struct {
	RoomID string `json:"roomId" validate:"required,uuid"`
}

type StartGameRequest struct {
	RoomID string `json:"roomId" validate:"required,uuid"`
}

type SubmitAnswerRequest struct {
	RoomID string `json:"roomId" validate:"required,uuid"`
	Answer string `json:"answer" validate:"required,max=128"`
}

type GetLeaderboardRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

type LeaveRoomRequest struct {
	RoomID string `json:"roomId" validate:"required,uuid"`
}

// Outbound payloads.

type RoomCreated struct {
	RoomID string       `json:"roomId"`
	Room   RoomSnapshot `json:"room"`
}

type RoomPayload struct {
	Room RoomSnapshot `json:"room"`
}

type QuestionUpdated struct {
	RoomID      string     `json:"roomId"`
	Symbols     string     `json:"symbols"`
	Round       int        `json:"round"`
	TotalRounds int        `json:"totalRounds"`
	Difficulty  Difficulty `json:"difficulty"`
	Points      int        `json:"points"`
	Deadline    time.Time  `json:"deadline"`
}

type PlayerAnswered struct {
	RoomID     string `json:"roomId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Round      int    `json:"round"`
	Correct    bool   `json:"correct"`
	Score      int    `json:"score"`
}

type RoundEnded struct {
	RoomID          string `json:"roomId"`
	Round           int    `json:"round"`
	CanonicalAnswer string `json:"canonicalAnswer"`
	NextRound       int    `json:"nextRound,omitempty"`
}

type GameEnded struct {
	RoomID      string          `json:"roomId"`
	Winner      *RankedPlayer   `json:"winner,omitempty"`
	Rankings    []RankedPlayer  `json:"rankings"`
	PayoutTable PayoutTable     `json:"payoutTable"`
	Receipts    []PayoutReceipt `json:"receipts"`
}

type RoomRemoved struct {
	RoomID string `json:"roomId"`
}

type RoomsList struct {
	Rooms []RoomSummary `json:"rooms"`
}

// BalanceUpdated tells one player how a fee, refund or payout moved their balance.
// Delta is negative for deductions.
type BalanceUpdated struct {
	RoomID     string `json:"roomId"`
	NewBalance int64  `json:"newBalance"`
	Delta      int64  `json:"delta"`
	Reason     string `json:"reason"`
	Message    string `json:"message"`
}

type ErrorPayload struct {
	Reason string `json:"reason"`
	Code   int    `json:"code,omitempty"`
}
