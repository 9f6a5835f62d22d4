// Package lives adds limited lives to a Dragonfly server.
//
// Every player starts with MaxLives lives and loses one on each death. Each
// life is worth one heart of maximum health, and the fewer lives a player
// has, the harsher the difficulty ladder becomes:
//   - 6 to 10 lives: no debuffs
//   - 4 or 5 lives: hunger
//   - 2 or 3 lives: stronger hunger, weakness and mining fatigue
//   - 1 life: the final rung, plus the world's final mode
//
// Lives are never lost below MinLives. Reaching it grants a short last-chance
// buff once. Lives can be restored at a ritual altar by sneaking and using
// it with a totem in hand, paying totems, diamond blocks and experience.
//
// # Quick Start
//
//	region, err := lives.OpenBoltRegion("world/lives.db")
//	...
//	mngr, err := lives.NewBuilder().
//	    Region(region).
//	    Slot(srv.World().Name()).
//	    Operators("Steve").
//	    Init()
//	...
//	mngr.Start()
//	for p := range srv.Accept() {
//	    mngr.Accept(p)
//	}
//	_ = mngr.Shutdown()
//
// # Persistence
//
// Life counts and the per-world HardcoreConfig are stored as JSON records in
// a Region, keyed by save slot. BoltRegion and SQLiteRegion are provided.
// The config record is written with defaults the first time a world loads so
// that it can be edited by hand.
//
// # Concurrency
//
// The Service is not safe for concurrent use. Handlers, the tick loop and
// commands all go through the Dispatcher, which serialises them.
package lives

// Version is the lives add-on version.
const Version = "1.0.0"
