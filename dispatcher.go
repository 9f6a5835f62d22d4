package lives

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Dispatcher delivers host events to a Service one at a time.
//
// Dragonfly runs every world on its own goroutine and the scheduler runs on
// another, so events can arrive concurrently. The dispatcher serialises them
// behind a single lock, which gives the Service the run-to-completion
// semantics of a single-threaded game loop.
type Dispatcher struct {
	service *Service
	storage *DataStorage
	log     *slog.Logger

	// pendingDeaths holds the cause of death of players who have not
	// respawned yet.
	pendingDeaths map[uuid.UUID]DeathCause

	mu sync.Mutex
}

// NewDispatcher creates a dispatcher for service. storage may be nil, in which
// case Save is a no-op.
func NewDispatcher(service *Service, storage *DataStorage, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		service:       service,
		storage:       storage,
		log:           log,
		pendingDeaths: make(map[uuid.UUID]DeathCause),
	}
}

// Dispatch handles ev and reports whether the event was consumed. Only
// EventRitual can be consumed; every other event reports false.
func (d *Dispatcher) Dispatch(ev Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch e := ev.(type) {
	case EventJoin:
		d.service.SyncPlayerState(e.Player)
	case EventDeath:
		d.pendingDeaths[e.Player.UUID()] = ClassifyDeath(e.Source)
	case EventRespawn:
		d.settleDeath(e.Player)
	case EventRitual:
		return d.handleRitual(e)
	case EventTick:
		for _, p := range e.Players {
			d.service.ApplyDifficultyTick(p)
		}
	case EventQuit:
		// Leaving on the death screen still costs the life.
		if _, dead := d.pendingDeaths[e.Player.UUID()]; dead {
			d.settleDeath(e.Player)
		}
		d.service.Forget(e.Player)
	default:
		panic(fmt.Sprintf("lives: unknown event %T", ev))
	}
	return false
}

// settleDeath takes the lives of a pending death, or only syncs the player
// when the respawn did not follow a death.
func (d *Dispatcher) settleDeath(p Player) {
	cause, dead := d.pendingDeaths[p.UUID()]
	if !dead {
		d.service.SyncPlayerState(p)
		return
	}
	delete(d.pendingDeaths, p.UUID())
	d.service.DecreaseOnDeath(p, cause)
}

func (d *Dispatcher) handleRitual(e EventRitual) bool {
	if !d.service.IsRitualAltar(e.Block) {
		return false
	}
	if !IsCatalyst(e.MainHand) {
		notify(e.Player, toneInfo, keyRitualCatalystRequired)
		return true
	}
	return d.service.TryRitualRestore(e.Player, e.Block)
}

// Do runs fn with exclusive access to the service. Commands use it to read
// and change lives outside of the event flow.
func (d *Dispatcher) Do(fn func(s *Service)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.service)
}

// Save flushes changed world data to its region.
func (d *Dispatcher) Save() error {
	if d.storage == nil {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.storage.Flush()
}

// ErrLivesOutOfRange is returned when an operator sets lives outside
// [MinLives, MaxLives].
var ErrLivesOutOfRange = errors.New("lives: value out of range")

// LivesOf returns the life count of p.
func (d *Dispatcher) LivesOf(p Player) int {
	var n int
	d.Do(func(s *Service) {
		n = s.Lives(p)
	})
	return n
}

// SetLivesOf sets the life count of p on behalf of an operator. Unlike
// Service.SetLives, values outside [MinLives, MaxLives] are rejected instead
// of clamped.
func (d *Dispatcher) SetLivesOf(p Player, value int) (int, error) {
	if value < MinLives || value > MaxLives {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrLivesOutOfRange, value, MinLives, MaxLives)
	}
	var n int
	d.Do(func(s *Service) {
		n = s.SetLives(p, value)
	})
	return n, nil
}
