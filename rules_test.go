package lives

import (
	"testing"

	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/world"
)

func TestClampLives(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, MinLives},
		{0, MinLives},
		{1, 1},
		{5, 5},
		{10, 10},
		{11, MaxLives},
		{1 << 20, MaxLives},
	}
	for _, tt := range tests {
		got := ClampLives(tt.in)
		if got != tt.want {
			t.Fatalf("ClampLives(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if again := ClampLives(got); again != got {
			t.Fatalf("ClampLives not idempotent for %d: %d then %d", tt.in, got, again)
		}
	}
}

func TestLivesToMaxHealth(t *testing.T) {
	tests := []struct {
		lives int
		want  float64
	}{
		{1, 2},
		{6, 12},
		{10, 20},
		{0, 2},
		{42, 20},
	}
	for _, tt := range tests {
		if got := LivesToMaxHealth(tt.lives); got != tt.want {
			t.Fatalf("LivesToMaxHealth(%d) = %v, want %v", tt.lives, got, tt.want)
		}
	}
}

func TestClassifyDeath(t *testing.T) {
	tests := []struct {
		name string
		src  world.DamageSource
		want DeathCause
	}{
		{"nil", nil, CauseGeneric},
		{"void", entity.VoidDamageSource{}, CauseVoid},
		{"fall", entity.FallDamageSource{}, CauseFall},
		{"projectile", entity.ProjectileDamageSource{}, CauseProjectile},
		{"mob attack", entity.AttackDamageSource{}, CauseAttack},
		{"drowning", entity.DrowningDamageSource{}, CauseGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDeath(tt.src); got != tt.want {
				t.Fatalf("ClassifyDeath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstantLoss(t *testing.T) {
	for _, c := range []DeathCause{CauseGeneric, CauseVoid, CauseFall, CauseAttack, CausePlayer, CauseProjectile} {
		if got := ConstantLoss(c); got != DeathLoss {
			t.Fatalf("ConstantLoss(%v) = %d, want %d", c, got, DeathLoss)
		}
	}
}
