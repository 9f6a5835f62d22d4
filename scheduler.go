package lives

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df-mc/dragonfly/server/world"
)

// Scheduler drives the lives rules from the game clock. Every tick it runs
// inside the transaction of each world with online players and dispatches an
// EventTick; interval loops such as autosave run on top of that.
//
// The scheduler's tick counter is the Clock of the Service.
type Scheduler struct {
	manager *Manager
	log     *slog.Logger

	// Loop management
	loops   []*loopState
	loopsMu sync.Mutex

	// Execution state
	running atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Tick tracking
	tickRate   time.Duration
	tickNumber atomic.Int64
}

// loopState tracks the state of a single interval loop.
type loopState struct {
	name     string
	fn       func()
	interval time.Duration
	nextRun  time.Time
}

// ShouldRun checks if the loop should run at the given time.
func (l *loopState) ShouldRun(now time.Time) bool {
	if l.interval == 0 {
		return true
	}
	return !now.Before(l.nextRun)
}

// MarkRun schedules the next run.
func (l *loopState) MarkRun(now time.Time) {
	if l.interval > 0 {
		// Drift-free timing
		l.nextRun = l.nextRun.Add(l.interval)
		if l.nextRun.Before(now) {
			// Catch up if we're behind
			l.nextRun = now.Add(l.interval)
		}
	}
}

// NewScheduler creates a scheduler ticking at 20 TPS.
func NewScheduler(log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		log:      log,
		tickRate: time.Second / ticksPerSecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// CurrentTick returns the number of ticks run since the scheduler started.
func (s *Scheduler) CurrentTick() int64 {
	return s.tickNumber.Load()
}

// Loop registers fn to run every interval. An interval of 0 runs fn every tick.
func (s *Scheduler) Loop(name string, interval time.Duration, fn func()) {
	s.loopsMu.Lock()
	defer s.loopsMu.Unlock()

	s.loops = append(s.loops, &loopState{
		name:     name,
		fn:       fn,
		interval: interval,
		nextRun:  time.Now().Add(interval),
	})
}

// Start begins the scheduler's tick loop.
func (s *Scheduler) Start() {
	if s.running.Swap(true) {
		return // Already running
	}
	go s.tickLoop()
}

// Stop shuts the scheduler down and waits for the running tick to finish.
func (s *Scheduler) Stop() {
	if !s.running.Swap(false) {
		return // Not running
	}
	close(s.stopCh)
	<-s.doneCh
}

// tickLoop is the main scheduler loop.
func (s *Scheduler) tickLoop() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

// tick executes one scheduler tick.
func (s *Scheduler) tick(now time.Time) {
	s.tickNumber.Add(1)

	if s.manager != nil {
		for w, sessions := range s.manager.groupedSessions() {
			if w == nil || len(sessions) == 0 {
				continue
			}
			s.tickWorld(w, sessions)
		}
	}

	s.loopsMu.Lock()
	loops := make([]*loopState, len(s.loops))
	copy(loops, s.loops)
	s.loopsMu.Unlock()

	for _, l := range loops {
		if !l.ShouldRun(now) {
			continue
		}
		s.run(l)
		l.MarkRun(now)
	}
}

// tickWorld dispatches an EventTick for the sessions of w inside its transaction.
func (s *Scheduler) tickWorld(w *world.World, sessions []*Session) {
	w.Exec(func(tx *world.Tx) {
		players := make([]Player, 0, len(sessions))
		for _, sess := range sessions {
			if sess.closed.Load() {
				continue
			}
			if p, ok := sess.Player(tx); ok {
				players = append(players, p)
			}
		}
		if len(players) == 0 {
			return
		}
		s.manager.dispatcher.Dispatch(EventTick{Players: players})
	})
}

func (s *Scheduler) run(l *loopState) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("lives: panic in loop", "loop", l.name, "error", fmt.Sprint(r), "stack", string(debug.Stack()))
		}
	}()
	l.fn()
}
