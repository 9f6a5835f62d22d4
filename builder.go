package lives

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/df-mc/dragonfly/server/cmd"
)

// DefaultAutosaveInterval is how often life counts are flushed when no
// interval is configured.
const DefaultAutosaveInterval = 30 * time.Second

// Builder configures the lives add-on before initialization.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	region    Region
	slot      string
	operators []string
	loss      LossFunc
	log       *slog.Logger
	autosave  time.Duration
	noCommand bool
}

// NewBuilder creates a new lives builder.
func NewBuilder() *Builder {
	return &Builder{autosave: DefaultAutosaveInterval}
}

// Region sets the region life counts and configs are persisted in.
func (b *Builder) Region(r Region) *Builder {
	b.region = r
	return b
}

// Slot sets the save slot of the world the rules apply to, usually the name
// of the overworld.
func (b *Builder) Slot(slot string) *Builder {
	b.slot = slot
	return b
}

// Operators adds the names allowed to use the lives command.
func (b *Builder) Operators(names ...string) *Builder {
	b.operators = append(b.operators, names...)
	return b
}

// LossFunc replaces the death-loss strategy.
func (b *Builder) LossFunc(f LossFunc) *Builder {
	b.loss = f
	return b
}

// Logger sets the logger used by every component.
func (b *Builder) Logger(log *slog.Logger) *Builder {
	b.log = log
	return b
}

// Autosave sets the interval at which changed life counts are flushed. A
// non-positive interval disables autosaving; data is still saved on Shutdown.
func (b *Builder) Autosave(interval time.Duration) *Builder {
	b.autosave = interval
	return b
}

// WithoutCommand skips registering the lives command.
func (b *Builder) WithoutCommand() *Builder {
	b.noCommand = true
	return b
}

// Init loads the world data and wires the service, dispatcher, scheduler and
// manager together. The returned Manager is not started; call Start.
func (b *Builder) Init() (*Manager, error) {
	log := b.log
	if log == nil {
		log = slog.Default()
	}

	storage := NewDataStorage(b.region, log)
	data, err := storage.World(b.slot)
	if err != nil {
		return nil, fmt.Errorf("load world %q: %w", b.slot, err)
	}

	sched := NewScheduler(log)
	service := NewService(data, sched, WithLossFunc(b.loss), WithLogger(log))
	d := NewDispatcher(service, storage, log)
	m := NewManager(d, sched, log)

	if b.autosave > 0 {
		sched.Loop("autosave", b.autosave, func() {
			if err := d.Save(); err != nil {
				log.Error("lives: autosave failed", "error", err)
			}
		})
	}
	if !b.noCommand {
		cmd.Register(NewCommand(d, NewOperators(b.operators...)))
	}

	log.Info("lives: initialised", "slot", data.Slot(), "finalMode", data.Config().FinalMode, "players", data.Lives().Len())
	return m, nil
}
