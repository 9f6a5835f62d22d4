package lives

import (
	"fmt"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
)

// Session represents a player's session on the server.
// It wraps the player's EntityHandle (which is persistent across transactions)
// and caches the identity used to key the player's lives.
//
// Sessions are created when players join and closed when they leave.
type Session struct {
	// handle is the persistent entity handle for the player
	handle *world.EntityHandle

	// uuid is cached for fast lookup
	uuid uuid.UUID

	// name is cached for fast lookup
	name string

	// worldCache is the player's current world
	worldCache atomic.Pointer[world.World]

	// manager is the manager that owns this session
	manager *Manager

	// closed indicates if the session has been closed
	closed atomic.Bool
}

// Player retrieves the *player.Player of this session within the given transaction.
// It returns (nil, false) if the player is not present in the transaction.
func (s *Session) Player(tx *world.Tx) (*player.Player, bool) {
	e, ok := s.handle.Entity(tx)
	if !ok {
		return nil, false
	}
	p, ok := e.(*player.Player)
	return p, ok
}

// World returns the world the player is currently in.
// Returns the cached world (may be slightly stale).
func (s *Session) World() *world.World {
	return s.worldCache.Load()
}

// String returns a string representation of the session for debugging.
func (s *Session) String() string {
	return fmt.Sprintf("Session{Name: %s, UUID: %s, Handle: %p}", s.name, s.uuid, s.handle)
}

// close marks the session closed and removes it from its manager.
// This is called automatically when the player disconnects.
func (s *Session) close() {
	if s.closed.Swap(true) {
		return
	}
	if s.manager != nil {
		s.manager.removeSession(s)
	}
}
