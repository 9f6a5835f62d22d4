package lives

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ConfigRecordKey is the region key under which the hardcore config is persisted.
const ConfigRecordKey = "xetpy_hardcore_config"

const (
	DefaultRitualAltarBlockID      = "minecraft:enchanting_table"
	DefaultRitualTotemCost         = 1
	DefaultRitualDiamondBlockCost  = 8
	DefaultRitualXPLevelsCost      = 20
	DefaultRitualCooldownTicks     = 1200
	DefaultLastChanceDurationTicks = 300

	// minLastChanceDurationTicks is one second at 20 ticks per second.
	minLastChanceDurationTicks = 20
)

// FinalMode selects what happens to a player who reaches MinLives.
//
// Only FinalModeDebt currently has an effect. Ban, spectator and prison are
// accepted and persisted but behave as no-ops.
type FinalMode int

const (
	FinalModeBan FinalMode = iota
	FinalModeSpectator
	FinalModePrison
	FinalModeDebt
)

// ID returns the persisted identifier of the mode.
func (m FinalMode) ID() string {
	switch m {
	case FinalModeBan:
		return "ban"
	case FinalModeSpectator:
		return "spectator"
	case FinalModePrison:
		return "prison"
	default:
		return "debt_mode"
	}
}

// String returns the string representation of the mode.
func (m FinalMode) String() string {
	return m.ID()
}

// ParseFinalMode parses a mode identifier case-insensitively. Unknown
// identifiers fall back to FinalModeDebt.
func ParseFinalMode(id string) FinalMode {
	for _, m := range []FinalMode{FinalModeBan, FinalModeSpectator, FinalModePrison, FinalModeDebt} {
		if strings.EqualFold(strings.TrimSpace(id), m.ID()) {
			return m
		}
	}
	return FinalModeDebt
}

// MarshalText implements encoding.TextMarshaler.
func (m FinalMode) MarshalText() ([]byte, error) {
	return []byte(m.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FinalMode) UnmarshalText(text []byte) error {
	*m = ParseFinalMode(string(text))
	return nil
}

// HardcoreConfig holds the per-world tunables. It is loaded once per world
// and passed around by value.
type HardcoreConfig struct {
	FinalMode               FinalMode `json:"finalMode"`
	RitualAltarBlockID      string    `json:"ritualAltarBlockId"`
	RitualTotemCost         int       `json:"ritualTotemCost"`
	RitualDiamondBlockCost  int       `json:"ritualDiamondBlockCost"`
	RitualXPLevelsCost      int       `json:"ritualXpLevelsCost"`
	RitualCooldownTicks     int       `json:"ritualCooldownTicks"`
	LastChanceDurationTicks int       `json:"lastChanceDurationTicks"`
}

// DefaultConfig returns the config used when a world has none stored.
func DefaultConfig() HardcoreConfig {
	return HardcoreConfig{
		FinalMode:               FinalModeDebt,
		RitualAltarBlockID:      DefaultRitualAltarBlockID,
		RitualTotemCost:         DefaultRitualTotemCost,
		RitualDiamondBlockCost:  DefaultRitualDiamondBlockCost,
		RitualXPLevelsCost:      DefaultRitualXPLevelsCost,
		RitualCooldownTicks:     DefaultRitualCooldownTicks,
		LastChanceDurationTicks: DefaultLastChanceDurationTicks,
	}
}

// Normalize returns a copy of c with every field clamped into its valid range.
func (c HardcoreConfig) Normalize() HardcoreConfig {
	switch c.FinalMode {
	case FinalModeBan, FinalModeSpectator, FinalModePrison, FinalModeDebt:
	default:
		c.FinalMode = FinalModeDebt
	}
	if strings.TrimSpace(c.RitualAltarBlockID) == "" {
		c.RitualAltarBlockID = DefaultRitualAltarBlockID
	}
	c.RitualTotemCost = max(0, c.RitualTotemCost)
	c.RitualDiamondBlockCost = max(0, c.RitualDiamondBlockCost)
	c.RitualXPLevelsCost = max(0, c.RitualXPLevelsCost)
	c.RitualCooldownTicks = max(0, c.RitualCooldownTicks)
	c.LastChanceDurationTicks = max(minLastChanceDurationTicks, c.LastChanceDurationTicks)
	return c
}

// DecodeConfig decodes a persisted config. Fields missing from data take their
// defaults and the result is normalized.
func DecodeConfig(data []byte) (HardcoreConfig, error) {
	// Decoding onto the defaults leaves absent fields untouched.
	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return HardcoreConfig{}, fmt.Errorf("decode hardcore config: %w", err)
	}
	return c.Normalize(), nil
}
