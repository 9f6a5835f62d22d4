package lives

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// LivesRecordKey is the region key under which life counts are persisted.
const LivesRecordKey = "xetpy_player_lives"

// LivesStore is the durable mapping from player identity to life count.
// Every value it holds, returns or encodes is clamped into [MinLives, MaxLives].
//
// Mutations mark the store dirty. The save pipeline (WorldData.Flush) writes
// dirty stores back to their region and clears the flag.
type LivesStore struct {
	lives map[uuid.UUID]int
	dirty bool
}

// NewLivesStore creates an empty store.
func NewLivesStore() *LivesStore {
	return &LivesStore{lives: make(map[uuid.UUID]int)}
}

// GetOrInit returns the clamped life count of a player. A player without an
// entry is initialised to DefaultLives, which marks the store dirty.
func (s *LivesStore) GetOrInit(id uuid.UUID) int {
	current, ok := s.lives[id]
	if !ok {
		s.lives[id] = DefaultLives
		s.dirty = true
		return DefaultLives
	}

	normalized := ClampLives(current)
	if normalized != current {
		s.lives[id] = normalized
		s.dirty = true
	}
	return normalized
}

// Peek returns the stored life count without initialising missing entries.
func (s *LivesStore) Peek(id uuid.UUID) (int, bool) {
	n, ok := s.lives[id]
	if !ok {
		return 0, false
	}
	return ClampLives(n), true
}

// Set clamps n, stores it and returns the value actually stored.
func (s *LivesStore) Set(id uuid.UUID, n int) int {
	normalized := ClampLives(n)
	s.lives[id] = normalized
	s.dirty = true
	return normalized
}

// Len returns the number of players tracked.
func (s *LivesStore) Len() int {
	return len(s.lives)
}

// Dirty reports whether the store changed since it was last saved.
func (s *LivesStore) Dirty() bool {
	return s.dirty
}

func (s *LivesStore) markClean() {
	s.dirty = false
}

// livesRecord is the persisted layout of a LivesStore.
type livesRecord struct {
	Players map[string]int `json:"players,omitempty"`
}

// MarshalJSON encodes the store as {"players": {"<uuid>": lives}}.
func (s *LivesStore) MarshalJSON() ([]byte, error) {
	rec := livesRecord{Players: make(map[string]int, len(s.lives))}
	for id, n := range s.lives {
		rec.Players[id.String()] = ClampLives(n)
	}
	return json.Marshal(rec)
}

// DecodeLivesStore decodes a persisted store. Entries whose key is not a valid
// UUID are dropped and logged; every kept value is clamped.
func DecodeLivesStore(data []byte, log *slog.Logger) (*LivesStore, error) {
	var rec livesRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode lives record: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	s := NewLivesStore()
	for key, n := range rec.Players {
		id, err := uuid.Parse(key)
		if err != nil {
			log.Warn("lives: dropping malformed player key", "key", key, "error", err)
			continue
		}
		s.lives[id] = ClampLives(n)
	}
	return s, nil
}
