package lives

import (
	"log/slog"

	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/world/sound"
	"github.com/google/uuid"
)

// criticalLivesThreshold is the count at or below which a lost life is
// announced as critical.
const criticalLivesThreshold = 2

// Service implements the lives rules: life accounting, the health it grants,
// the difficulty ladder and the restoration ritual.
//
// Service is not safe for concurrent use. All calls are expected to come
// through a Dispatcher, which serialises them the way a single game loop would.
//
// Ritual cooldowns, debt reminders and last-chance grants are kept in memory
// only; restarting the process resets them.
type Service struct {
	data  *WorldData
	clock Clock
	loss  LossFunc
	log   *slog.Logger

	ritualCooldownUntil map[uuid.UUID]int64
	debtReminderAt      map[uuid.UUID]int64
	lastChanceGranted   map[uuid.UUID]struct{}
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLossFunc replaces the death-loss strategy. The default is ConstantLoss.
func WithLossFunc(f LossFunc) ServiceOption {
	return func(s *Service) {
		if f != nil {
			s.loss = f
		}
	}
}

// WithLogger sets the logger of the service.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a service over the data of one world.
func NewService(data *WorldData, clock Clock, opts ...ServiceOption) *Service {
	s := &Service{
		data:                data,
		clock:               clock,
		loss:                ConstantLoss,
		log:                 slog.Default(),
		ritualCooldownUntil: make(map[uuid.UUID]int64),
		debtReminderAt:      make(map[uuid.UUID]int64),
		lastChanceGranted:   make(map[uuid.UUID]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the hardcore config of the service's world.
func (s *Service) Config() HardcoreConfig {
	return s.data.Config()
}

// Lives returns the life count of p, initialising it on first access.
func (s *Service) Lives(p Player) int {
	return s.data.Lives().GetOrInit(p.UUID())
}

// SetLives sets the life count of p, applies the resulting maximum health and
// notifies p of the change. It returns the clamped value actually stored.
func (s *Service) SetLives(p Player, lives int) int {
	previous := s.Lives(p)
	updated := s.data.Lives().Set(p.UUID(), lives)
	if updated > MinLives {
		delete(s.lastChanceGranted, p.UUID())
	}

	s.RecalculateMaxHealth(p, updated)
	s.notifyLivesChanged(p, previous, updated)
	return updated
}

// DecreaseOnDeath removes the lives a death of the given cause costs. A loss
// outside [0, MaxLives] is saturated, so a death never adds lives. Landing
// on MinLives grants the last-chance buff once; it is granted again only after
// the player has been above MinLives in between.
func (s *Service) DecreaseOnDeath(p Player, cause DeathCause) int {
	current := s.Lives(p)
	updated := s.SetLives(p, current-min(max(0, s.loss(cause)), MaxLives))

	s.log.Debug("lives: player died", "player", p.Name(), "cause", cause, "lives", updated)

	if updated == MinLives {
		if _, granted := s.lastChanceGranted[p.UUID()]; !granted {
			s.lastChanceGranted[p.UUID()] = struct{}{}
			s.applyLastChance(p)
		}
	}
	return updated
}

// RestoreLives adds amount lives to p. Negative amounts restore nothing and
// amounts above MaxLives restore up to MaxLives.
func (s *Service) RestoreLives(p Player, amount int) int {
	return s.SetLives(p, s.Lives(p)+min(max(0, amount), MaxLives))
}

// CanRestoreLives reports whether p is below MaxLives.
func (s *Service) CanRestoreLives(p Player) bool {
	return s.Lives(p) < MaxLives
}

// SyncPlayerState applies the maximum health of p's current life count and
// refreshes the life indicator. Unlike SetLives it sends no chat messages.
func (s *Service) SyncPlayerState(p Player) {
	lives := s.Lives(p)
	s.RecalculateMaxHealth(p, lives)
	s.sendActionBar(p, lives)
}

// RecalculateMaxHealth sets the maximum health of p from lives. Nothing is
// sent to the client when the maximum is already right.
func (s *Service) RecalculateMaxHealth(p Player, lives int) {
	if want := LivesToMaxHealth(lives); p.MaxHealth() != want {
		p.SetMaxHealth(want)
	}
}

// Forget drops the debt reminder of p so that it is repeated as soon as p
// comes back. Ritual cooldowns survive leaving and rejoining.
func (s *Service) Forget(p Player) {
	delete(s.debtReminderAt, p.UUID())
}

func (s *Service) notifyLivesChanged(p Player, previous, updated int) {
	s.sendActionBar(p, updated)

	switch {
	case updated < previous:
		notify(p, toneBad, keyHeartsLeft, updated)
	case updated > previous:
		notify(p, toneGood, keyHeartsRestored, updated)
	}

	if updated <= criticalLivesThreshold && updated < previous {
		notify(p, toneBad, keyHeartsCritical, updated)
		p.PlaySound(sound.Note{Instrument: sound.Bell(), Pitch: 6})
	}
}

func (s *Service) sendActionBar(p Player, lives int) {
	p.SendPopup(coloured(toneWarning, translate(p.Locale(), keyActionBarHearts, lives, MaxLives)))
}

func (s *Service) applyLastChance(p Player) {
	ticks := s.Config().LastChanceDurationTicks
	d := ticksToDuration(ticks)

	p.AddEffect(effect.New(effect.Resistance, 1, d))
	p.AddEffect(effect.New(effect.Speed, 1, d))
	notify(p, toneWarning, keyLastChance, max(1, ticks/ticksPerSecond))
	p.PlaySound(sound.Totem{})
}

func (s *Service) now() int64 {
	if s.clock == nil {
		return 0
	}
	return s.clock.CurrentTick()
}
