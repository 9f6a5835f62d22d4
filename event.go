package lives

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
)

// Event is an inbound host event delivered to the Dispatcher. Events wrap the
// Dragonfly handler parameters the lives rules need, so the rules stay
// decoupled from Dragonfly's handler signatures.
type Event interface {
	event()
}

// EventJoin is emitted when a player joins the server.
type EventJoin struct {
	Player Player
}

// EventDeath is emitted when a player dies. The lives are taken when the
// player respawns.
type EventDeath struct {
	Player Player
	Source world.DamageSource
}

// EventRespawn is emitted when a player respawns.
type EventRespawn struct {
	Player Player
}

// EventRitual is emitted when a sneaking player uses an item on a block.
type EventRitual struct {
	Player   Player
	Block    world.Block
	MainHand item.Stack
}

// EventTick is emitted once per tick for the online players of one world.
type EventTick struct {
	Players []Player
}

// EventQuit is emitted when a player leaves the server.
type EventQuit struct {
	Player Player
}

func (EventJoin) event()    {}
func (EventDeath) event()   {}
func (EventRespawn) event() {}
func (EventRitual) event()  {}
func (EventTick) event()    {}
func (EventQuit) event()    {}
