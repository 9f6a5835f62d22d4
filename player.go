package lives

import (
	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/item/inventory"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Player is the part of a Dragonfly player the lives rules act on.
// *player.Player satisfies it; it must only be used inside the player's
// world transaction.
type Player interface {
	UUID() uuid.UUID
	Name() string
	Locale() language.Tag

	MaxHealth() float64
	// SetMaxHealth changes the maximum health, lowering the current health
	// to the new maximum if it exceeds it.
	SetMaxHealth(health float64)

	AddEffect(e effect.Effect)
	RemoveEffect(e effect.Type)

	ExperienceLevel() int
	SetExperienceLevel(level int)
	Inventory() *inventory.Inventory
	Offhand() *inventory.Inventory

	Message(a ...any)
	SendPopup(a ...any)
	PlaySound(s world.Sound)
}

// Compile-time check that Dragonfly players can be passed to the Service.
var _ Player = (*player.Player)(nil)

// Clock reports the current game tick.
type Clock interface {
	CurrentTick() int64
}

// ticksPerSecond is the tick rate of the game loop.
const ticksPerSecond = 20
