package lives

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// DataStorage materialises and caches the persistent data of each world.
// A WorldData is loaded from the region the first time its slot is requested
// and the same instance is returned afterwards.
type DataStorage struct {
	region Region
	log    *slog.Logger

	worlds   map[string]*WorldData
	worldsMu sync.Mutex
}

// NewDataStorage creates a data storage over region. A nil log uses
// slog.Default().
func NewDataStorage(region Region, log *slog.Logger) *DataStorage {
	if log == nil {
		log = slog.Default()
	}
	return &DataStorage{
		region: region,
		log:    log,
		worlds: make(map[string]*WorldData),
	}
}

// World returns the data of the world stored under slot, loading it on first
// access. It returns ErrWorldUnavailable if the slot is blank or no region is
// configured.
func (d *DataStorage) World(slot string) (*WorldData, error) {
	if d == nil || d.region == nil || strings.TrimSpace(slot) == "" {
		return nil, ErrWorldUnavailable
	}

	d.worldsMu.Lock()
	defer d.worldsMu.Unlock()

	if w, ok := d.worlds[slot]; ok {
		return w, nil
	}

	w, err := loadWorldData(d.region, slot, d.log)
	if err != nil {
		return nil, err
	}
	d.worlds[slot] = w
	return w, nil
}

// Flush saves every loaded world whose data changed. It attempts every world
// and returns the first error encountered.
func (d *DataStorage) Flush() error {
	d.worldsMu.Lock()
	worlds := make([]*WorldData, 0, len(d.worlds))
	for _, w := range d.worlds {
		worlds = append(worlds, w)
	}
	d.worldsMu.Unlock()

	var first error
	for _, w := range worlds {
		if err := w.Flush(); err != nil {
			d.log.Error("lives: failed to save world data", "slot", w.slot, "error", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// WorldData is the persistent state of one world: its life counts and its
// hardcore config.
type WorldData struct {
	slot   string
	region Region

	lives  *LivesStore
	config HardcoreConfig
}

// NewWorldData creates world data that is not backed by any region. It is
// mainly useful for tests; Flush is a no-op.
func NewWorldData(store *LivesStore, config HardcoreConfig) *WorldData {
	if store == nil {
		store = NewLivesStore()
	}
	return &WorldData{lives: store, config: config.Normalize()}
}

func loadWorldData(region Region, slot string, log *slog.Logger) (*WorldData, error) {
	w := &WorldData{slot: slot, region: region}

	raw, ok, err := region.Get(slot, LivesRecordKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if w.lives, err = DecodeLivesStore(raw, log.With("slot", slot)); err != nil {
			return nil, fmt.Errorf("load %s: %w", slot, err)
		}
	} else {
		w.lives = NewLivesStore()
	}

	raw, ok, err = region.Get(slot, ConfigRecordKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if w.config, err = DecodeConfig(raw); err != nil {
			return nil, fmt.Errorf("load %s: %w", slot, err)
		}
	} else {
		// Write the defaults out so operators have a record to edit.
		w.config = DefaultConfig()
		payload, err := json.Marshal(w.config)
		if err != nil {
			return nil, fmt.Errorf("encode hardcore config: %w", err)
		}
		if err := region.Put(slot, ConfigRecordKey, payload); err != nil {
			return nil, err
		}
		log.Info("lives: wrote default hardcore config", "slot", slot)
	}
	return w, nil
}

// Slot returns the save slot of the world.
func (w *WorldData) Slot() string {
	return w.slot
}

// Lives returns the life count store of the world.
func (w *WorldData) Lives() *LivesStore {
	return w.lives
}

// Config returns the hardcore config of the world.
func (w *WorldData) Config() HardcoreConfig {
	return w.config
}

// Flush writes the life counts back to the region if they changed. Like any
// other access to the store it must run on the Dispatcher.
func (w *WorldData) Flush() error {
	if w.region == nil || !w.lives.Dirty() {
		return nil
	}
	payload, err := json.Marshal(w.lives)
	if err != nil {
		return fmt.Errorf("encode lives record: %w", err)
	}
	if err := w.region.Put(w.slot, LivesRecordKey, payload); err != nil {
		return err
	}
	w.lives.markClean()
	return nil
}
