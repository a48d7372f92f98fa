package game

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// RoundDriver is what the scheduler advances. Every hook re-checks that the
// room and round it was scheduled for are still current.
type RoundDriver interface {
	CloseRound(ctx context.Context, roomID string, round int) (RoundOutcome, error)
	OpenRound(ctx context.Context, roomID string, round int) (time.Time, error)
	ExpireRoom(ctx context.Context, roomID string) error
}

type slot struct {
	timer *time.Timer
	gen   uint64
}

// RoundScheduler keeps at most one pending timer per room: round end, next
// round start, or post-game cleanup.
type RoundScheduler struct {
	driver RoundDriver
	settle time.Duration
	grace  time.Duration
	now    func() time.Time
	log    *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	slots map[string]slot
	gen   uint64
}

func NewRoundScheduler(driver RoundDriver, settle, grace time.Duration, log *zap.Logger) *RoundScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &RoundScheduler{
		driver: driver,
		settle: settle,
		grace:  grace,
		now:    time.Now,
		log:    log.Named("scheduler"),
		ctx:    ctx,
		cancel: cancel,
		slots:  make(map[string]slot),
	}
}

func (s *RoundScheduler) set(roomID string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return
	}
	if old, ok := s.slots[roomID]; ok {
		old.timer.Stop()
	}
	s.gen++
	gen := s.gen
	t := time.AfterFunc(d, func() {
		if !s.release(roomID, gen) {
			return
		}
		fn()
	})
	s.slots[roomID] = slot{timer: t, gen: gen}
}

// release clears the slot if gen still owns it. A false return means the
// timer was superseded or canceled after it fired.
func (s *RoundScheduler) release(roomID string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.slots[roomID]
	if !ok || cur.gen != gen {
		return false
	}
	delete(s.slots, roomID)
	return s.ctx.Err() == nil
}

func (s *RoundScheduler) ScheduleRoundEnd(roomID string, round int, deadline time.Time) {
	d := deadline.Sub(s.now())
	if d < 0 {
		d = 0
	}
	s.set(roomID, d, func() { s.roundEnded(s.ctx, roomID, round) })
	s.log.Debug("round end scheduled", zap.String("room_id", roomID), zap.Int("round", round), zap.Duration("in", d))
}

func (s *RoundScheduler) roundEnded(ctx context.Context, roomID string, round int) {
	out, err := s.driver.CloseRound(ctx, roomID, round)
	if err != nil {
		s.log.Debug("round end skipped", zap.String("room_id", roomID), zap.Int("round", round), zap.Error(err))
		return
	}
	s.after(roomID, out)
}

func (s *RoundScheduler) after(roomID string, out RoundOutcome) {
	if out.Finished {
		s.set(roomID, s.grace, func() {
			if err := s.driver.ExpireRoom(s.ctx, roomID); err != nil {
				s.log.Debug("cleanup skipped", zap.String("room_id", roomID), zap.Error(err))
			}
		})
		return
	}
	next := out.NextRound
	s.set(roomID, s.settle, func() {
		deadline, err := s.driver.OpenRound(s.ctx, roomID, next)
		if err != nil {
			s.log.Debug("round start skipped", zap.String("room_id", roomID), zap.Int("round", next), zap.Error(err))
			return
		}
		s.ScheduleRoundEnd(roomID, next, deadline)
	})
}

// EndNow closes round immediately. If the tick already closed it the driver
// reports a stale round and nothing is rescheduled.
func (s *RoundScheduler) EndNow(ctx context.Context, roomID string, round int) (RoundOutcome, error) {
	out, err := s.driver.CloseRound(ctx, roomID, round)
	if err != nil {
		return RoundOutcome{}, err
	}
	s.after(roomID, out)
	return out, nil
}

func (s *RoundScheduler) Cancel(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.slots[roomID]; ok {
		cur.timer.Stop()
		delete(s.slots, roomID)
	}
}

func (s *RoundScheduler) Pending(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.slots[roomID]
	return ok
}

// Stop cancels every pending timer; nothing fires afterwards.
func (s *RoundScheduler) Stop() {
	s.cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, cur := range s.slots {
		cur.timer.Stop()
		delete(s.slots, id)
	}
}
