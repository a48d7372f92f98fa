package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"duel-service/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Dependencies struct {
	Settings  Settings
	Ledger    BalanceLedger
	Puzzles   PuzzleProvider
	Payouts   *PayoutEngine
	Notifier  Notifier
	Recorders []Recorder
	Clock     func() time.Time
	Log       *zap.Logger
}

type CreateRoomInput struct {
	Name          string
	EntryFee      int64
	HostAccountID string
	HostPlayerID  string
	HostName      string
}

type JoinInput struct {
	AccountID string
	PlayerID  string
	Name      string
}

// Registry owns every live room. Its lock guards the map only; room state is
// behind each Session's own mutex.
type Registry struct {
	settings  Settings
	ledger    BalanceLedger
	puzzles   PuzzleProvider
	payouts   *PayoutEngine
	notifier  Notifier
	recorders []Recorder
	now       func() time.Time
	log       *zap.Logger
	scheduler *RoundScheduler

	mu    sync.RWMutex
	rooms map[string]*Session
}

func NewRegistry(deps Dependencies) (*Registry, error) {
	if err := deps.Settings.Validate(); err != nil {
		return nil, err
	}
	if deps.Ledger == nil || deps.Puzzles == nil {
		return nil, fmt.Errorf("%w: ledger and puzzle provider are required", domain.ErrInvalidInput)
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Notifier == nil {
		deps.Notifier = nopNotifier{}
	}
	if deps.Payouts == nil {
		deps.Payouts = NewPayoutEngine(deps.Ledger, nil, deps.Settings, deps.Log)
	}
	r := &Registry{
		settings:  deps.Settings,
		ledger:    deps.Ledger,
		puzzles:   deps.Puzzles,
		payouts:   deps.Payouts,
		notifier:  deps.Notifier,
		recorders: deps.Recorders,
		now:       deps.Clock,
		log:       deps.Log.Named("registry"),
		rooms:     make(map[string]*Session),
	}
	r.scheduler = NewRoundScheduler(r, deps.Settings.SettleDelay, deps.Settings.CleanupGrace, deps.Log)
	r.scheduler.now = deps.Clock
	return r, nil
}

func (r *Registry) Settings() Settings { return r.settings }

func (r *Registry) Scheduler() *RoundScheduler { return r.scheduler }

func (r *Registry) lookup(roomID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomID)
	}
	return s, nil
}

// CreateRoom reserves the host's fee and registers a Waiting room with the host seated.
func (r *Registry) CreateRoom(ctx context.Context, in CreateRoomInput) (domain.RoomSnapshot, error) {
	if in.EntryFee < r.settings.MinEntryFee || in.EntryFee > r.settings.MaxEntryFee {
		return domain.RoomSnapshot{}, fmt.Errorf("%w: %d not in %d..%d",
			domain.ErrInvalidEntryFee, in.EntryFee, r.settings.MinEntryFee, r.settings.MaxEntryFee)
	}
	if in.HostAccountID == "" || in.HostPlayerID == "" {
		return domain.RoomSnapshot{}, fmt.Errorf("%w: host identity missing", domain.ErrInvalidInput)
	}
	if err := r.ledger.Reserve(ctx, in.HostAccountID, in.EntryFee); err != nil {
		return domain.RoomSnapshot{}, reserveError(err)
	}

	name := in.Name
	if name == "" {
		name = in.HostName + "'s room"
	}
	s := newSession(uuid.NewString(), name, in.EntryFee, r.settings, r.puzzles, r.now, r.log.Named("room"))
	s.addLocked(in.HostPlayerID, in.HostAccountID, in.HostName)
	snap := s.snapshotLocked()

	r.mu.Lock()
	r.rooms[s.id] = s
	r.mu.Unlock()

	r.log.Info("room created",
		zap.String("room_id", s.id),
		zap.String("host_account_id", in.HostAccountID),
		zap.Int64("entry_fee", in.EntryFee),
	)
	r.notifyFee(ctx, s.id, in.HostPlayerID, in.HostAccountID, in.EntryFee)
	r.publishLobby()
	return snap, nil
}

// JoinRoom is all-or-nothing: the seat is held, the fee reserved outside the
// room lock, then the seat committed. A failed commit refunds the fee.
func (r *Registry) JoinRoom(ctx context.Context, roomID string, in JoinInput) (domain.RoomSnapshot, error) {
	s, err := r.lookup(roomID)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	if in.AccountID == "" || in.PlayerID == "" {
		return domain.RoomSnapshot{}, fmt.Errorf("%w: player identity missing", domain.ErrInvalidInput)
	}
	if err := s.reserveSeat(in.PlayerID, in.AccountID); err != nil {
		return domain.RoomSnapshot{}, err
	}
	if err := r.ledger.Reserve(ctx, in.AccountID, s.EntryFee()); err != nil {
		s.releaseSeat(in.PlayerID)
		return domain.RoomSnapshot{}, reserveError(err)
	}
	snap, err := s.commitSeat(in.PlayerID, in.Name)
	if err != nil {
		if _, rerr := r.payouts.Refund(ctx, roomID, in.AccountID, s.EntryFee()); rerr != nil {
			r.log.Error("refund after failed join", zap.String("room_id", roomID), zap.Error(rerr))
		}
		return domain.RoomSnapshot{}, err
	}
	r.notifyFee(ctx, roomID, in.PlayerID, in.AccountID, s.EntryFee())

	r.log.Info("player joined",
		zap.String("room_id", roomID),
		zap.String("player_id", in.PlayerID),
		zap.Int("players", len(snap.Players)),
	)
	r.notifier.BroadcastRoom(roomID, domain.NewEvent(domain.EventRoomUpdated, domain.RoomPayload{Room: snap}))
	r.publishLobby()
	return snap, nil
}

// notifyFee tells a freshly seated player what the entry fee left them with.
func (r *Registry) notifyFee(ctx context.Context, roomID, playerID, accountID string, fee int64) {
	balance, err := r.ledger.BalanceOf(ctx, accountID)
	if err != nil {
		r.log.Warn("balance lookup after reserve", zap.String("account_id", accountID), zap.Error(err))
		return
	}
	r.notifier.SendToPlayer(roomID, playerID, domain.NewEvent(domain.EventBalanceUpdated, domain.BalanceUpdated{
		RoomID:     roomID,
		NewBalance: balance,
		Delta:      -fee,
		Reason:     "entry_fee",
		Message:    fmt.Sprintf("%d reserved as entry fee", fee),
	}))
}

func (r *Registry) notifyRefund(roomID, playerID string, amount, balance int64) {
	r.notifier.SendToPlayer(roomID, playerID, domain.NewEvent(domain.EventBalanceUpdated, domain.BalanceUpdated{
		RoomID:     roomID,
		NewBalance: balance,
		Delta:      amount,
		Reason:     "refund",
		Message:    fmt.Sprintf("%d entry fee refunded", amount),
	}))
}

func reserveError(err error) error {
	if errors.Is(err, domain.ErrInsufficientFunds) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrInsufficientFunds, err)
}

func (r *Registry) GetRoom(roomID string) (domain.RoomSnapshot, error) {
	s, err := r.lookup(roomID)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	return s.Snapshot(), nil
}

// ListJoinable returns Waiting rooms with a free seat, newest first.
func (r *Registry) ListJoinable() []domain.RoomSummary {
	r.mu.RLock()
	sessions := make([]*Session, 0, len(r.rooms))
	for _, s := range r.rooms {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	out := make([]domain.RoomSummary, 0, len(sessions))
	for _, s := range sessions {
		if sum, ok := s.Summary(); ok {
			out = append(out, sum)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// RemoveRoom deletes the room and cancels its timers. Members of a game that
// never finished get their fees back.
func (r *Registry) RemoveRoom(ctx context.Context, roomID string) error {
	r.mu.Lock()
	s, ok := r.rooms[roomID]
	if ok {
		delete(r.rooms, roomID)
	}
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomID)
	}

	r.scheduler.Cancel(roomID)
	for _, p := range s.close() {
		balance, err := r.payouts.Refund(ctx, roomID, p.AccountID, s.EntryFee())
		if err != nil {
			r.log.Error("refund on room removal", zap.String("room_id", roomID), zap.String("account_id", p.AccountID), zap.Error(err))
			continue
		}
		r.notifyRefund(roomID, p.ID, s.EntryFee(), balance)
	}
	r.log.Info("room removed", zap.String("room_id", roomID))
	r.notifier.BroadcastRoom(roomID, domain.NewEvent(domain.EventRoomRemoved, domain.RoomRemoved{RoomID: roomID}))
	r.notifier.BroadcastLobby(domain.NewEvent(domain.EventRoomRemoved, domain.RoomRemoved{RoomID: roomID}))
	r.publishLobby()
	return nil
}

func (r *Registry) StartGame(ctx context.Context, roomID, playerID string) (domain.RoomSnapshot, error) {
	s, err := r.lookup(roomID)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	q, err := s.Start(playerID, r.settings.HostOnlyStart, r.settings.MinPlayersToStart())
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	snap := s.Snapshot()
	r.scheduler.ScheduleRoundEnd(roomID, q.Round, q.Deadline)

	r.notifier.BroadcastRoom(roomID, domain.NewEvent(domain.EventGameStarted, domain.RoomPayload{Room: snap}))
	r.notifier.BroadcastRoom(roomID, domain.NewEvent(domain.EventQuestionUpdated, q))
	r.publishLobby()
	return snap, nil
}

func (r *Registry) SubmitAnswer(ctx context.Context, roomID, playerID, answer string) (domain.AnswerResult, error) {
	s, err := r.lookup(roomID)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	res, err := s.SubmitAnswer(playerID, answer)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	score := 0
	for _, p := range s.Snapshot().Players {
		if p.ID == playerID {
			score = p.Score
		}
	}
	r.notifier.SendToPlayer(roomID, playerID, domain.NewEvent(domain.EventAnswerResult, res))
	r.notifier.BroadcastRoom(roomID, domain.NewEvent(domain.EventPlayerAnswered, domain.PlayerAnswered{
		RoomID:     roomID,
		PlayerID:   playerID,
		PlayerName: res.PlayerName,
		Round:      res.Round,
		Correct:    res.Correct,
		Score:      score,
	}))
	return res, nil
}

// LeaveRoom removes a member, settles the fee per the room's state and drops
// the room once it is empty.
func (r *Registry) LeaveRoom(ctx context.Context, roomID, playerID string) error {
	s, err := r.lookup(roomID)
	if err != nil {
		return err
	}
	rm, err := s.Remove(playerID)
	if err != nil {
		return err
	}
	if rm.refund > 0 {
		balance, err := r.payouts.Refund(ctx, roomID, rm.accountID, rm.refund)
		if err != nil {
			r.log.Error("refund on leave", zap.String("room_id", roomID), zap.String("account_id", rm.accountID), zap.Error(err))
		} else {
			r.notifyRefund(roomID, playerID, rm.refund, balance)
		}
	}
	r.log.Info("player left",
		zap.String("room_id", roomID),
		zap.String("player_id", playerID),
		zap.String("status", string(rm.status)),
		zap.Int64("refund", rm.refund),
		zap.Int64("forfeit", rm.forfeit),
	)

	if rm.empty {
		r.mu.Lock()
		delete(r.rooms, roomID)
		r.mu.Unlock()
		r.scheduler.Cancel(roomID)
		r.log.Info("room removed (empty)", zap.String("room_id", roomID))
		r.notifier.BroadcastLobby(domain.NewEvent(domain.EventRoomRemoved, domain.RoomRemoved{RoomID: roomID}))
		r.publishLobby()
		return nil
	}
	r.notifier.BroadcastRoom(roomID, domain.NewEvent(domain.EventRoomUpdated, domain.RoomPayload{Room: s.Snapshot()}))
	if rm.status == domain.RoomWaiting {
		r.publishLobby()
	}
	return nil
}

// ForceEndRound ends the live round now, through the same path as the timer.
// RoundAttempts returns the audit trail of one round, including expired attempts.
func (r *Registry) RoundAttempts(roomID string, round int) ([]domain.AnswerRecord, error) {
	s, err := r.lookup(roomID)
	if err != nil {
		return nil, err
	}
	records, ok := s.RoundAttempts(round)
	if !ok {
		return nil, fmt.Errorf("%w: round %d has not been played", domain.ErrInvalidInput, round)
	}
	return records, nil
}

func (r *Registry) ForceEndRound(ctx context.Context, roomID string) (RoundOutcome, error) {
	s, err := r.lookup(roomID)
	if err != nil {
		return RoundOutcome{}, err
	}
	round, open := s.CurrentRound()
	if s.Status() != domain.RoomPlaying {
		return RoundOutcome{}, domain.ErrRoomNotPlaying
	}
	if !open {
		return RoundOutcome{}, domain.ErrNoActivePuzzle
	}
	return r.scheduler.EndNow(ctx, roomID, round)
}

// DistributePayouts pays a finished room. It succeeds once per room; the
// final round close already calls it, so later calls get ErrPayoutIssued.
func (r *Registry) DistributePayouts(ctx context.Context, roomID string) (domain.PayoutResult, error) {
	s, err := r.lookup(roomID)
	if err != nil {
		return domain.PayoutResult{}, err
	}
	claim, err := s.ClaimPayout()
	if err != nil {
		return domain.PayoutResult{}, err
	}
	return r.settle(ctx, s, claim), nil
}

func (r *Registry) settle(ctx context.Context, s *Session, claim *payoutClaim) domain.PayoutResult {
	result := r.payouts.Distribute(ctx, s.ID(), claim.ranked, claim.table)
	s.CompletePayout(result)

	record := claim.record
	record.Receipts = result.Receipts
	for _, rec := range r.recorders {
		if err := rec.RecordGame(ctx, record); err != nil {
			r.log.Warn("game record failed", zap.String("room_id", s.ID()), zap.Error(err))
		}
	}

	r.notifier.BroadcastRoom(s.ID(), domain.NewEvent(domain.EventGameEnded, domain.GameEnded{
		RoomID:      s.ID(),
		Winner:      record.Winner,
		Rankings:    result.Rankings,
		PayoutTable: result.Table,
		Receipts:    result.Receipts,
	}))
	return result
}

// CloseRound is the scheduler's round-end hook.
func (r *Registry) CloseRound(ctx context.Context, roomID string, round int) (RoundOutcome, error) {
	s, err := r.lookup(roomID)
	if err != nil {
		return RoundOutcome{}, err
	}
	out, claim, err := s.EndRound(round)
	if err != nil {
		return RoundOutcome{}, err
	}
	r.notifier.BroadcastRoom(roomID, domain.NewEvent(domain.EventRoundEnded, domain.RoundEnded{
		RoomID:          roomID,
		Round:           out.Round,
		CanonicalAnswer: out.CanonicalAnswer,
		NextRound:       out.NextRound,
	}))
	if out.Finished && claim != nil {
		r.settle(ctx, s, claim)
	}
	return out, nil
}

// OpenRound is the scheduler's round-start hook. A room that cannot get a
// puzzle is removed, which refunds its members.
func (r *Registry) OpenRound(ctx context.Context, roomID string, round int) (time.Time, error) {
	s, err := r.lookup(roomID)
	if err != nil {
		return time.Time{}, err
	}
	q, err := s.BeginRound(round)
	if errors.Is(err, domain.ErrPuzzleUnavailable) {
		r.log.Error("no puzzle for round, removing room", zap.String("room_id", roomID), zap.Int("round", round), zap.Error(err))
		_ = r.RemoveRoom(ctx, roomID)
		return time.Time{}, err
	}
	if err != nil {
		return time.Time{}, err
	}
	r.notifier.BroadcastRoom(roomID, domain.NewEvent(domain.EventQuestionUpdated, q))
	return q.Deadline, nil
}

// ExpireRoom is the scheduler's cleanup hook; only Finished rooms go.
func (r *Registry) ExpireRoom(ctx context.Context, roomID string) error {
	s, err := r.lookup(roomID)
	if err != nil {
		return err
	}
	if s.Status() != domain.RoomFinished {
		return domain.ErrStaleRound
	}
	return r.RemoveRoom(ctx, roomID)
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// Shutdown stops all timers. Rooms stay in memory.
func (r *Registry) Shutdown() {
	r.scheduler.Stop()
}

func (r *Registry) publishLobby() {
	r.notifier.BroadcastLobby(domain.NewEvent(domain.EventRoomsList, domain.RoomsList{Rooms: r.ListJoinable()}))
}

type nopNotifier struct{}

func (nopNotifier) BroadcastRoom(string, domain.Event)        {}
func (nopNotifier) SendToPlayer(string, string, domain.Event) {}
func (nopNotifier) BroadcastLobby(domain.Event)               {}
