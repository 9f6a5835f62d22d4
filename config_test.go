package lives

import (
	"encoding/json"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.FinalMode != FinalModeDebt {
		t.Fatalf("FinalMode = %v, want debt_mode", c.FinalMode)
	}
	if c.RitualAltarBlockID != "minecraft:enchanting_table" {
		t.Fatalf("RitualAltarBlockID = %q", c.RitualAltarBlockID)
	}
	if c.RitualTotemCost != 1 || c.RitualDiamondBlockCost != 8 || c.RitualXPLevelsCost != 20 {
		t.Fatalf("unexpected ritual costs: %+v", c)
	}
	if c.RitualCooldownTicks != 1200 || c.LastChanceDurationTicks != 300 {
		t.Fatalf("unexpected durations: %+v", c)
	}
	if c.Normalize() != c {
		t.Fatal("defaults change when normalized")
	}
}

func TestConfigNormalize(t *testing.T) {
	c := HardcoreConfig{
		FinalMode:               FinalMode(42),
		RitualAltarBlockID:      "  ",
		RitualTotemCost:         -1,
		RitualDiamondBlockCost:  -8,
		RitualXPLevelsCost:      -20,
		RitualCooldownTicks:     -1,
		LastChanceDurationTicks: 5,
	}.Normalize()

	want := HardcoreConfig{
		FinalMode:               FinalModeDebt,
		RitualAltarBlockID:      DefaultRitualAltarBlockID,
		LastChanceDurationTicks: 20,
	}
	if c != want {
		t.Fatalf("Normalize() = %+v, want %+v", c, want)
	}
}

func TestParseFinalMode(t *testing.T) {
	tests := []struct {
		id   string
		want FinalMode
	}{
		{"ban", FinalModeBan},
		{"SPECTATOR", FinalModeSpectator},
		{" prison ", FinalModePrison},
		{"debt_mode", FinalModeDebt},
		{"Debt_Mode", FinalModeDebt},
		{"exile", FinalModeDebt},
		{"", FinalModeDebt},
	}
	for _, tt := range tests {
		if got := ParseFinalMode(tt.id); got != tt.want {
			t.Fatalf("ParseFinalMode(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, c HardcoreConfig)
	}{
		{
			name: "missing fields take defaults",
			data: `{"ritualTotemCost":3}`,
			check: func(t *testing.T, c HardcoreConfig) {
				if c.RitualTotemCost != 3 {
					t.Fatalf("RitualTotemCost = %d, want 3", c.RitualTotemCost)
				}
				if c.RitualDiamondBlockCost != DefaultRitualDiamondBlockCost {
					t.Fatalf("RitualDiamondBlockCost = %d, want default", c.RitualDiamondBlockCost)
				}
			},
		},
		{
			name: "unknown final mode",
			data: `{"finalMode":"exile"}`,
			check: func(t *testing.T, c HardcoreConfig) {
				if c.FinalMode != FinalModeDebt {
					t.Fatalf("FinalMode = %v, want debt_mode", c.FinalMode)
				}
			},
		},
		{
			name: "known final mode",
			data: `{"finalMode":"spectator"}`,
			check: func(t *testing.T, c HardcoreConfig) {
				if c.FinalMode != FinalModeSpectator {
					t.Fatalf("FinalMode = %v, want spectator", c.FinalMode)
				}
			},
		},
		{
			name: "out of range values are clamped",
			data: `{"ritualXpLevelsCost":-4,"lastChanceDurationTicks":0}`,
			check: func(t *testing.T, c HardcoreConfig) {
				if c.RitualXPLevelsCost != 0 {
					t.Fatalf("RitualXPLevelsCost = %d, want 0", c.RitualXPLevelsCost)
				}
				if c.LastChanceDurationTicks != 20 {
					t.Fatalf("LastChanceDurationTicks = %d, want 20", c.LastChanceDurationTicks)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := DecodeConfig([]byte(tt.data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestConfigEncodesModeID(t *testing.T) {
	data, err := json.Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw["finalMode"] != "debt_mode" {
		t.Fatalf("finalMode encoded as %v, want \"debt_mode\"", raw["finalMode"])
	}
}
