package lives

import (
	"log/slog"
	"sync"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
)

// Manager tracks the sessions of online players, routes their events to the
// Dispatcher and owns the Scheduler that drives the difficulty ladder.
type Manager struct {
	dispatcher *Dispatcher
	scheduler  *Scheduler
	log        *slog.Logger

	// sessions holds all active sessions
	sessions   map[*world.EntityHandle]*Session
	sessionsMu sync.RWMutex

	// sessionsByWorld groups sessions by world for the tick loop
	sessionsByWorld   map[*world.World]map[*Session]struct{}
	sessionsByWorldMu sync.RWMutex
}

// NewManager creates a manager delivering events to d and ticking its
// sessions with sched. The scheduler is not started; call Start.
func NewManager(d *Dispatcher, sched *Scheduler, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	m := &Manager{
		dispatcher:      d,
		scheduler:       sched,
		log:             log,
		sessions:        make(map[*world.EntityHandle]*Session),
		sessionsByWorld: make(map[*world.World]map[*Session]struct{}),
	}
	sched.manager = m
	return m
}

// Accept creates a session for a player that just joined, installs its
// handler and syncs the player's health with their lives. It must be called
// within the player's transaction, as the loop over server.Accept does.
func (m *Manager) Accept(p *player.Player) *Session {
	s := m.NewSession(p)
	p.Handle(NewHandler(s))
	m.dispatcher.Dispatch(EventJoin{Player: p})
	return s
}

// NewSession creates a new session for a player.
func (m *Manager) NewSession(p *player.Player) *Session {
	s := &Session{
		handle:  p.H(),
		uuid:    p.UUID(),
		name:    p.Name(),
		manager: m,
	}
	s.worldCache.Store(p.Tx().World())
	m.addSession(s)

	m.log.Debug("lives: session opened", "session", s)
	return s
}

// addSession registers a session with the manager.
func (m *Manager) addSession(s *Session) {
	m.sessionsMu.Lock()
	m.sessions[s.handle] = s
	m.sessionsMu.Unlock()

	if w := s.World(); w != nil {
		m.sessionsByWorldMu.Lock()
		if m.sessionsByWorld[w] == nil {
			m.sessionsByWorld[w] = make(map[*Session]struct{})
		}
		m.sessionsByWorld[w][s] = struct{}{}
		m.sessionsByWorldMu.Unlock()
	}
}

// MoveSession updates the session's world in the index.
func (m *Manager) MoveSession(s *Session, from, to *world.World) {
	m.sessionsByWorldMu.Lock()
	if from != nil && m.sessionsByWorld[from] != nil {
		delete(m.sessionsByWorld[from], s)
		if len(m.sessionsByWorld[from]) == 0 {
			delete(m.sessionsByWorld, from)
		}
	}
	if to != nil {
		if m.sessionsByWorld[to] == nil {
			m.sessionsByWorld[to] = make(map[*Session]struct{})
		}
		m.sessionsByWorld[to][s] = struct{}{}
	}
	m.sessionsByWorldMu.Unlock()
}

// removeSession unregisters a session from the manager.
func (m *Manager) removeSession(s *Session) {
	m.sessionsMu.Lock()
	delete(m.sessions, s.handle)
	m.sessionsMu.Unlock()

	// The cached world may be stale, so clear the session from every world.
	m.sessionsByWorldMu.Lock()
	for w, set := range m.sessionsByWorld {
		delete(set, s)
		if len(set) == 0 {
			delete(m.sessionsByWorld, w)
		}
	}
	m.sessionsByWorldMu.Unlock()

	m.log.Debug("lives: session closed", "session", s)
}

// AllSessions returns a slice of all active sessions.
func (m *Manager) AllSessions() []*Session {
	m.sessionsMu.RLock()
	defer m.sessionsMu.RUnlock()

	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		if !s.closed.Load() {
			sessions = append(sessions, s)
		}
	}
	return sessions
}

// groupedSessions returns a snapshot of sessions grouped by world.
func (m *Manager) groupedSessions() map[*world.World][]*Session {
	m.sessionsByWorldMu.RLock()
	defer m.sessionsByWorldMu.RUnlock()

	result := make(map[*world.World][]*Session, len(m.sessionsByWorld))
	for w, set := range m.sessionsByWorld {
		list := make([]*Session, 0, len(set))
		for s := range set {
			list = append(list, s)
		}
		result[w] = list
	}
	return result
}

// Start starts the scheduler.
func (m *Manager) Start() {
	m.scheduler.Start()
}

// Shutdown stops the scheduler, closes every session and saves the world
// data one last time.
func (m *Manager) Shutdown() error {
	m.scheduler.Stop()

	for _, s := range m.AllSessions() {
		s.close()
	}
	return m.dispatcher.Save()
}
