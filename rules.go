package lives

import (
	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
)

const (
	// MinLives is the floor of a player's life count. A player at MinLives is
	// never reduced further; they enter the final mode instead.
	MinLives = 1
	// MaxLives is the ceiling of a player's life count.
	MaxLives = 10
	// DefaultLives is assigned to a player the first time their count is read.
	DefaultLives = 10
	// DeathLoss is the number of lives lost per death.
	DeathLoss = 1
	// HealthPerLife is the maximum health granted per life (one heart).
	HealthPerLife = 2.0
)

// ClampLives clamps n into [MinLives, MaxLives].
func ClampLives(n int) int {
	return max(MinLives, min(MaxLives, n))
}

// LivesToMaxHealth returns the maximum health a player with the given life
// count should have. Out-of-range counts are clamped first.
func LivesToMaxHealth(lives int) float64 {
	return float64(ClampLives(lives)) * HealthPerLife
}

// DeathCause is a coarse classification of what killed a player.
type DeathCause int

const (
	CauseGeneric DeathCause = iota
	CauseVoid
	CauseFall
	CauseAttack
	CausePlayer
	CauseProjectile
)

// String returns the string representation of the cause.
func (c DeathCause) String() string {
	switch c {
	case CauseVoid:
		return "void"
	case CauseFall:
		return "fall"
	case CauseAttack:
		return "attack"
	case CausePlayer:
		return "player"
	case CauseProjectile:
		return "projectile"
	default:
		return "generic"
	}
}

// ClassifyDeath maps a Dragonfly damage source to a DeathCause. A nil source
// classifies as CauseGeneric.
func ClassifyDeath(src world.DamageSource) DeathCause {
	switch s := src.(type) {
	case entity.VoidDamageSource:
		return CauseVoid
	case entity.FallDamageSource:
		return CauseFall
	case entity.ProjectileDamageSource:
		return CauseProjectile
	case entity.AttackDamageSource:
		if _, ok := s.Attacker.(*player.Player); ok {
			return CausePlayer
		}
		return CauseAttack
	default:
		return CauseGeneric
	}
}

// LossFunc decides how many lives a death of the given cause costs.
type LossFunc func(cause DeathCause) int

// ConstantLoss is the default LossFunc: every death costs DeathLoss.
func ConstantLoss(DeathCause) int {
	return DeathLoss
}
