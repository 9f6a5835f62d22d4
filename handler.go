package lives

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// SessionHandler wraps a session to implement player.Handler.
// It turns the Dragonfly events the lives rules react to into Events and
// hands them to the manager's Dispatcher.
//
// Concurrency:
// Handlers are executed synchronously by Dragonfly within the world's
// transaction, so the *player.Player passed along with an event is safe to
// use for the duration of the dispatch.
type SessionHandler struct {
	player.NopHandler
	session *Session
}

// NewHandler creates a new player.Handler for the given session.
func NewHandler(s *Session) player.Handler {
	return &SessionHandler{session: s}
}

// Compile-time check that SessionHandler implements player.Handler.
var _ player.Handler = (*SessionHandler)(nil)

func (h *SessionHandler) dispatch(ev Event) bool {
	s := h.session
	if s.manager == nil || s.closed.Load() {
		return false
	}
	return s.manager.dispatcher.Dispatch(ev)
}

// HandleDeath records the death; the lives are taken on respawn.
func (h *SessionHandler) HandleDeath(p *player.Player, src world.DamageSource, keepInv *bool) {
	h.dispatch(EventDeath{Player: p, Source: src})
}

// HandleRespawn handles the player respawning.
func (h *SessionHandler) HandleRespawn(p *player.Player, pos *mgl64.Vec3, w **world.World) {
	h.dispatch(EventRespawn{Player: p})
}

// HandleItemUseOnBlock starts the ritual when a sneaking player uses an item
// on the altar. Handled interactions are cancelled so the altar's own
// behaviour does not run.
func (h *SessionHandler) HandleItemUseOnBlock(ctx *player.Context, pos cube.Pos, face cube.Face, clickPos mgl64.Vec3) {
	p := ctx.Val()
	if !p.Sneaking() {
		return
	}
	mainHand, _ := p.HeldItems()
	if h.dispatch(EventRitual{Player: p, Block: p.Tx().Block(pos), MainHand: mainHand}) {
		ctx.Cancel()
	}
}

// HandleChangeWorld handles the player changing worlds.
func (h *SessionHandler) HandleChangeWorld(p *player.Player, before, after *world.World) {
	h.session.worldCache.Store(after)
	if h.session.manager != nil {
		h.session.manager.MoveSession(h.session, before, after)
	}
}

// HandleQuit handles a player quitting the server.
func (h *SessionHandler) HandleQuit(p *player.Player) {
	defer h.session.close()
	h.dispatch(EventQuit{Player: p})
}
