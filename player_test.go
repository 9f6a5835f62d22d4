package lives

import (
	"fmt"
	"strings"
	"testing"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// fakePlayer records everything the rules do to a player. It doubles as a
// command source and target; the embedded cmd.Source is never called.
type fakePlayer struct {
	cmd.Source

	id     uuid.UUID
	name   string
	locale language.Tag

	health    float64
	maxHealth float64
	effects   map[effect.Type]effect.Effect
	xp        int
	inv       *inventory.Inventory
	offhand   *inventory.Inventory

	maxHealthSets int

	messages []string
	popups   []string
	sounds   []world.Sound
}

func newFakePlayer(name string) *fakePlayer {
	return &fakePlayer{
		id:        uuid.New(),
		name:      name,
		locale:    language.English,
		health:    20,
		maxHealth: 20,
		effects:   make(map[effect.Type]effect.Effect),
		inv:       inventory.New(36, nil),
		offhand:   inventory.New(1, nil),
	}
}

func (p *fakePlayer) UUID() uuid.UUID      { return p.id }
func (p *fakePlayer) Name() string         { return p.name }
func (p *fakePlayer) Locale() language.Tag { return p.locale }
func (p *fakePlayer) MaxHealth() float64   { return p.maxHealth }

func (p *fakePlayer) SetMaxHealth(health float64) {
	p.maxHealthSets++
	p.maxHealth = health
	p.health = min(p.health, health)
}

// AddEffect keeps the stronger of two effects of the same type, like the
// server does.
func (p *fakePlayer) AddEffect(e effect.Effect) {
	if existing, ok := p.effects[e.Type()]; ok && existing.Level() > e.Level() {
		return
	}
	p.effects[e.Type()] = e
}

func (p *fakePlayer) RemoveEffect(t effect.Type) { delete(p.effects, t) }

func (p *fakePlayer) ExperienceLevel() int             { return p.xp }
func (p *fakePlayer) SetExperienceLevel(level int)     { p.xp = level }
func (p *fakePlayer) Inventory() *inventory.Inventory { return p.inv }
func (p *fakePlayer) Offhand() *inventory.Inventory   { return p.offhand }

func (p *fakePlayer) invs() []*inventory.Inventory {
	return []*inventory.Inventory{p.inv, p.offhand}
}

func (p *fakePlayer) Message(a ...any)        { p.messages = append(p.messages, fmt.Sprint(a...)) }
func (p *fakePlayer) SendPopup(a ...any)      { p.popups = append(p.popups, fmt.Sprint(a...)) }
func (p *fakePlayer) PlaySound(s world.Sound) { p.sounds = append(p.sounds, s) }

func (p *fakePlayer) effectLevel(t effect.Type) int {
	e, ok := p.effects[t]
	if !ok {
		return 0
	}
	return e.Level()
}

func (p *fakePlayer) give(t *testing.T, it world.Item, count int) {
	t.Helper()
	if _, err := p.inv.AddItem(item.NewStack(it, count)); err != nil {
		t.Fatalf("add %d items: %v", count, err)
	}
}

func (p *fakePlayer) sawMessage(substr string) bool {
	for _, m := range p.messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

type fakeClock struct {
	tick int64
}

func (c *fakeClock) CurrentTick() int64 { return c.tick }

// newTestService creates a service over in-memory world data.
func newTestService(conf HardcoreConfig) (*Service, *fakeClock) {
	clock := &fakeClock{}
	return NewService(NewWorldData(nil, conf), clock), clock
}
