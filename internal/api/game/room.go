package game

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"duel-service/domain"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type member struct {
	id        string
	accountID string
	name      string
	score     int
	joinedAt  time.Time
}

// RoundOutcome is what closing a round produced.
type RoundOutcome struct {
	Round           int    `json:"round"`
	CanonicalAnswer string `json:"canonicalAnswer"`
	Finished        bool   `json:"finished"`
	NextRound       int    `json:"nextRound,omitempty"`
}

// payoutClaim is the frozen input for a single payout distribution.
type payoutClaim struct {
	ranked []domain.RankedPlayer
	table  domain.PayoutTable
	record domain.GameRecord
}

// removal describes the money movement a leave requires.
type removal struct {
	accountID string
	refund    int64
	forfeit   int64
	empty     bool
	status    domain.RoomStatus
}

// Session is one room's state machine. Every method takes mu; none of them
// call the ledger.
type Session struct {
	mu sync.Mutex

	id          string
	name        string
	entryFee    int64
	capacity    int
	totalRounds int
	duration    time.Duration
	houseEdge   decimal.Decimal
	status      domain.RoomStatus
	hostID      string
	players     []*member
	pending     map[string]string

	prizePool int64
	forfeited int64

	round     int
	roundOpen bool
	puzzle    *domain.Puzzle
	deadline  time.Time
	answers   map[string]*domain.AnswerRecord
	archive   map[int]map[string]*domain.AnswerRecord

	payoutClaimed bool
	result        *domain.PayoutResult
	closed        bool

	createdAt  time.Time
	startedAt  time.Time
	finishedAt time.Time

	provider PuzzleProvider
	now      func() time.Time
	log      *zap.Logger
}

func newSession(id, name string, entryFee int64, s Settings, provider PuzzleProvider, now func() time.Time, log *zap.Logger) *Session {
	return &Session{
		id:          id,
		name:        name,
		entryFee:    entryFee,
		capacity:    s.MaxPlayers,
		totalRounds: s.TotalRounds,
		duration:    s.RoundDuration,
		houseEdge:   s.HouseEdge,
		status:      domain.RoomWaiting,
		pending:     map[string]string{},
		answers:     map[string]*domain.AnswerRecord{},
		archive:     map[int]map[string]*domain.AnswerRecord{},
		createdAt:   now(),
		provider:    provider,
		now:         now,
		log:         log.With(zap.String("room_id", id)),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) EntryFee() int64 { return s.entryFee }

func (s *Session) findLocked(playerID string) (int, *member) {
	for i, m := range s.players {
		if m.id == playerID {
			return i, m
		}
	}
	return -1, nil
}

// reserveSeat holds a slot for a joiner while the ledger call is in flight.
func (s *Session) reserveSeat(playerID, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrRoomNotFound
	}
	if s.status != domain.RoomWaiting {
		return fmt.Errorf("%w: room is %s", domain.ErrRoomNotJoinable, s.status)
	}
	if len(s.players)+len(s.pending) >= s.capacity {
		return fmt.Errorf("%w: room is full", domain.ErrRoomNotJoinable)
	}
	if _, ok := s.pending[playerID]; ok {
		return domain.ErrAlreadyInRoom
	}
	taken := lo.ContainsBy(s.players, func(m *member) bool {
		return m.id == playerID || m.accountID == accountID
	})
	if taken || lo.Contains(lo.Values(s.pending), accountID) {
		return domain.ErrAlreadyInRoom
	}
	s.pending[playerID] = accountID
	return nil
}

func (s *Session) releaseSeat(playerID string) {
	s.mu.Lock()
	delete(s.pending, playerID)
	s.mu.Unlock()
}

// commitSeat turns a reserved seat into membership once the fee is held.
func (s *Session) commitSeat(playerID, name string) (domain.RoomSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accountID, ok := s.pending[playerID]
	if !ok {
		return domain.RoomSnapshot{}, fmt.Errorf("%w: no reserved seat", domain.ErrRoomNotJoinable)
	}
	delete(s.pending, playerID)
	if s.closed {
		return domain.RoomSnapshot{}, domain.ErrRoomNotFound
	}
	if s.status != domain.RoomWaiting {
		return domain.RoomSnapshot{}, fmt.Errorf("%w: room is %s", domain.ErrRoomNotJoinable, s.status)
	}
	s.addLocked(playerID, accountID, name)
	return s.snapshotLocked(), nil
}

func (s *Session) addLocked(playerID, accountID, name string) {
	s.players = append(s.players, &member{
		id:        playerID,
		accountID: accountID,
		name:      name,
		joinedAt:  s.now(),
	})
	if s.hostID == "" {
		s.hostID = playerID
	}
	s.prizePool += s.entryFee
}

// Start moves Waiting to Playing and opens round one.
func (s *Session) Start(playerID string, hostOnly bool, minPlayers int) (domain.QuestionUpdated, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.QuestionUpdated{}, domain.ErrRoomNotFound
	}
	if s.status != domain.RoomWaiting {
		return domain.QuestionUpdated{}, fmt.Errorf("%w: room is %s", domain.ErrRoomNotJoinable, s.status)
	}
	if _, m := s.findLocked(playerID); m == nil {
		return domain.QuestionUpdated{}, domain.ErrPlayerNotFound
	}
	if hostOnly && playerID != s.hostID {
		return domain.QuestionUpdated{}, domain.ErrNotHost
	}
	if len(s.players) < minPlayers {
		return domain.QuestionUpdated{}, fmt.Errorf("%w: need %d, have %d", domain.ErrNotEnoughPlayers, minPlayers, len(s.players))
	}

	s.status = domain.RoomPlaying
	s.startedAt = s.now()
	s.round = 1
	q, err := s.openRoundLocked()
	if err != nil {
		s.status = domain.RoomWaiting
		s.startedAt = time.Time{}
		s.round = 0
		return domain.QuestionUpdated{}, err
	}
	s.log.Info("game started", zap.Int("players", len(s.players)), zap.Int64("prize_pool", s.prizePool))
	return q, nil
}

func (s *Session) openRoundLocked() (domain.QuestionUpdated, error) {
	tier := TierForRound(s.round)
	p, err := s.provider.NextPuzzle(tier)
	if err != nil {
		return domain.QuestionUpdated{}, fmt.Errorf("%w: %v", domain.ErrPuzzleUnavailable, err)
	}
	s.puzzle = &p
	s.roundOpen = true
	s.deadline = s.now().Add(s.duration)
	s.answers = map[string]*domain.AnswerRecord{}
	return domain.QuestionUpdated{
		RoomID:      s.id,
		Symbols:     p.Symbols,
		Round:       s.round,
		TotalRounds: s.totalRounds,
		Difficulty:  p.Difficulty,
		Points:      p.Points,
		Deadline:    s.deadline,
	}, nil
}

// BeginRound opens round r after the settle delay. Calls for any other round
// fail with ErrStaleRound.
func (s *Session) BeginRound(r int) (domain.QuestionUpdated, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.QuestionUpdated{}, domain.ErrRoomNotFound
	}
	if s.status != domain.RoomPlaying || s.roundOpen || s.round != r-1 {
		return domain.QuestionUpdated{}, domain.ErrStaleRound
	}
	s.round = r
	q, err := s.openRoundLocked()
	if err != nil {
		s.round = r - 1
		return domain.QuestionUpdated{}, err
	}
	return q, nil
}

// EndRound closes round r. Closing the last round finishes the game and claims
// the payout in the same critical section.
func (s *Session) EndRound(r int) (RoundOutcome, *payoutClaim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return RoundOutcome{}, nil, domain.ErrRoomNotFound
	}
	if s.status != domain.RoomPlaying || s.round != r || !s.roundOpen {
		return RoundOutcome{}, nil, domain.ErrStaleRound
	}

	s.roundOpen = false
	s.archive[r] = s.answers
	out := RoundOutcome{Round: r}
	if s.puzzle != nil {
		out.CanonicalAnswer = s.puzzle.Answer
	}
	if r < s.totalRounds {
		out.NextRound = r + 1
		return out, nil, nil
	}

	s.status = domain.RoomFinished
	s.finishedAt = s.now()
	out.Finished = true
	claim, err := s.claimLocked()
	if err != nil {
		return out, nil, err
	}
	s.log.Info("game finished", zap.Int64("prize_pool", s.prizePool), zap.Int("players", len(s.players)))
	return out, claim, nil
}

// SubmitAnswer records an attempt. Late attempts are kept for audit and
// reported as ErrRoundExpired.
func (s *Session) SubmitAnswer(playerID, raw string) (domain.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.AnswerResult{}, domain.ErrRoomNotFound
	}
	if s.status != domain.RoomPlaying {
		return domain.AnswerResult{}, domain.ErrRoomNotPlaying
	}
	_, m := s.findLocked(playerID)
	if m == nil {
		return domain.AnswerResult{}, domain.ErrPlayerNotFound
	}
	if s.puzzle == nil {
		return domain.AnswerResult{}, domain.ErrNoActivePuzzle
	}

	rec, ok := s.answers[playerID]
	if !ok {
		rec = &domain.AnswerRecord{PlayerID: playerID, Round: s.round}
		s.answers[playerID] = rec
	}

	at := s.now()
	if !s.roundOpen || at.After(s.deadline) {
		rec.Attempts = append(rec.Attempts, domain.Attempt{
			Raw:         raw,
			Normalized:  Normalize(raw),
			Expired:     true,
			SubmittedAt: at,
		})
		s.log.Debug("late answer", zap.String("player_id", playerID), zap.Int("round", s.round))
		return domain.AnswerResult{}, fmt.Errorf("%w: round %d", domain.ErrRoundExpired, s.round)
	}

	v := Score(raw, *s.puzzle, at, s.deadline, rec.Scored)
	rec.Attempts = append(rec.Attempts, domain.Attempt{
		Raw:             raw,
		Normalized:      v.Normalized,
		Correct:         v.Correct,
		SubmittedAt:     at,
		TimeRemainingMs: v.TimeRemainingMs,
	})
	if v.Points > 0 {
		rec.Scored = true
		rec.Points = v.Points
		m.score += v.Points
	}

	res := domain.AnswerResult{
		RoomID:          s.id,
		PlayerID:        playerID,
		PlayerName:      m.name,
		Round:           s.round,
		Correct:         v.Correct,
		Points:          v.Points,
		Attempts:        len(rec.Attempts),
		FirstCorrect:    v.Points > 0,
		YourAnswer:      raw,
		TimeRemainingMs: v.TimeRemainingMs,
		Message:         "Try again!",
	}
	if v.Correct {
		res.CanonicalAnswer = s.puzzle.Answer
		res.Message = lo.Ternary(v.Points > 0, fmt.Sprintf("Correct! +%d points", v.Points), "Already scored this round")
	}
	return res, nil
}

// Remove drops a member. A Waiting leaver is refunded, a Playing leaver
// forfeits the fee, and nothing moves once Finished.
func (s *Session) Remove(playerID string) (removal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return removal{}, domain.ErrRoomNotFound
	}
	i, m := s.findLocked(playerID)
	if m == nil {
		return removal{}, domain.ErrPlayerNotFound
	}

	out := removal{accountID: m.accountID, status: s.status}
	switch s.status {
	case domain.RoomWaiting:
		s.prizePool -= s.entryFee
		out.refund = s.entryFee
	case domain.RoomPlaying:
		s.prizePool -= s.entryFee
		s.forfeited += s.entryFee
		out.forfeit = s.entryFee
	}
	s.players = append(s.players[:i], s.players[i+1:]...)
	delete(s.answers, playerID)

	if s.hostID == playerID {
		s.hostID = ""
		if len(s.players) > 0 {
			s.hostID = s.players[0].id
		}
	}
	if len(s.players) == 0 {
		s.closed = true
		out.empty = true
	}
	return out, nil
}

// ClaimPayout sets the one-shot payout flag.
func (s *Session) ClaimPayout() (*payoutClaim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.RoomFinished {
		return nil, domain.ErrGameNotFinished
	}
	return s.claimLocked()
}

func (s *Session) claimLocked() (*payoutClaim, error) {
	if s.payoutClaimed {
		return nil, domain.ErrPayoutIssued
	}
	s.payoutClaimed = true

	players := s.playersLocked()
	ranked := RankPlayers(players)
	table := CalculatePayouts(s.prizePool, len(players), s.houseEdge)
	record := domain.GameRecord{
		RoomID:      s.id,
		RoomName:    s.name,
		FinishedAt:  s.finishedAt,
		PlayerCount: len(players),
		EntryFee:    s.entryFee,
		PrizePool:   s.prizePool,
		HouseTake:   table.HouseTake,
		PlayerPot:   table.PlayerPot,
		Forfeited:   s.forfeited,
		Rankings:    ranked,
	}
	if len(ranked) > 0 {
		w := ranked[0]
		record.Winner = &w
		record.WinnerAmount = table.ByPosition[1]
	}
	return &payoutClaim{ranked: ranked, table: table, record: record}, nil
}

func (s *Session) CompletePayout(result domain.PayoutResult) {
	s.mu.Lock()
	s.result = &result
	s.mu.Unlock()
}

func (s *Session) Result() (domain.PayoutResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return domain.PayoutResult{}, false
	}
	return *s.result, true
}

// close marks the session gone and returns members owed a refund: only a game
// that never finished refunds on forced removal.
func (s *Session) close() []domain.PlayerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.roundOpen = false
	if s.status == domain.RoomFinished {
		return nil
	}
	owed := s.playersLocked()
	s.prizePool = 0
	return owed
}

func (s *Session) Status() domain.RoomStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// CurrentRound reports the live round and whether it is still accepting answers.
func (s *Session) CurrentRound() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round, s.roundOpen
}

func (s *Session) joinable() bool {
	return !s.closed && s.status == domain.RoomWaiting && len(s.players)+len(s.pending) < s.capacity
}

func (s *Session) Summary() (domain.RoomSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.RoomSummary{
		ID:          s.id,
		Name:        s.name,
		EntryFee:    s.entryFee,
		PlayerCount: len(s.players),
		MaxPlayers:  s.capacity,
		CreatedAt:   s.createdAt,
	}, s.joinable()
}

func (s *Session) Snapshot() domain.RoomSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) playersLocked() []domain.PlayerSnapshot {
	return lo.Map(s.players, func(m *member, _ int) domain.PlayerSnapshot {
		return domain.PlayerSnapshot{
			ID:        m.id,
			AccountID: m.accountID,
			Name:      m.name,
			Score:     m.score,
			IsHost:    m.id == s.hostID,
			JoinedAt:  m.joinedAt,
		}
	})
}

func (s *Session) snapshotLocked() domain.RoomSnapshot {
	snap := domain.RoomSnapshot{
		ID:           s.id,
		Name:         s.name,
		EntryFee:     s.entryFee,
		PrizePool:    s.prizePool,
		Forfeited:    s.forfeited,
		MaxPlayers:   s.capacity,
		Status:       s.status,
		CurrentRound: s.round,
		TotalRounds:  s.totalRounds,
		RoundOpen:    s.roundOpen,
		HostID:       s.hostID,
		Players:      s.playersLocked(),
		CreatedAt:    s.createdAt,
	}
	if s.roundOpen {
		d := s.deadline
		snap.Deadline = &d
	}
	if !s.startedAt.IsZero() {
		t := s.startedAt
		snap.StartedAt = &t
	}
	if !s.finishedAt.IsZero() {
		t := s.finishedAt
		snap.FinishedAt = &t
	}
	return snap
}

// RoundAttempts copies every record of a round, live or archived, ordered by
// first submission. ok is false for rounds that have not been played.
func (s *Session) RoundAttempts(round int) ([]domain.AnswerRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if round < 1 || round > s.round {
		return nil, false
	}
	records := s.archive[round]
	if round == s.round && s.roundOpen {
		records = s.answers
	}
	out := make([]domain.AnswerRecord, 0, len(records))
	for _, rec := range records {
		cp := *rec
		cp.Attempts = append([]domain.Attempt(nil), rec.Attempts...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if len(a.Attempts) > 0 && len(b.Attempts) > 0 && !a.Attempts[0].SubmittedAt.Equal(b.Attempts[0].SubmittedAt) {
			return a.Attempts[0].SubmittedAt.Before(b.Attempts[0].SubmittedAt)
		}
		return a.PlayerID < b.PlayerID
	})
	return out, true
}
