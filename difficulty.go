package lives

import (
	"time"

	"github.com/df-mc/dragonfly/server/entity/effect"
)

const (
	// difficultyEffectTicks is how long each ladder effect lasts. The ladder
	// is reapplied every tick, so effects never run out while they apply.
	difficultyEffectTicks = 80
	// debtReminderTicks is the minimum gap between two debt mode reminders.
	debtReminderTicks = 15 * ticksPerSecond
)

// debuff is one rung effect of the difficulty ladder. Amplifier is zero-based,
// as shown to players; Dragonfly levels start at one.
type debuff struct {
	typ       effect.LastingType
	amplifier int
}

func (d debuff) effect() effect.Effect {
	return effect.New(d.typ, d.amplifier+1, ticksToDuration(difficultyEffectTicks)).WithoutParticles()
}

// trackedDebuffs are every effect type the ladder may apply. They are removed
// when a player climbs back to a debuff-free count.
var trackedDebuffs = []effect.Type{
	effect.Hunger,
	effect.Weakness,
	effect.MiningFatigue,
	effect.Slowness,
	effect.Darkness,
}

// debtModeDebuffs are layered over the MinLives rung in debt mode.
var debtModeDebuffs = []debuff{
	{effect.Weakness, 3},
	{effect.Slowness, 2},
	{effect.MiningFatigue, 2},
	{effect.Darkness, 0},
}

// ladderDebuffs returns the debuffs of the rung for a life count. Counts of 6
// and above have none.
func ladderDebuffs(lives int) []debuff {
	switch lives = ClampLives(lives); {
	case lives >= 6:
		return nil
	case lives >= 4:
		return []debuff{{effect.Hunger, 0}}
	case lives >= 2:
		return []debuff{
			{effect.Hunger, 1},
			{effect.Weakness, 0},
			{effect.MiningFatigue, 0},
		}
	default:
		return []debuff{
			{effect.Hunger, 2},
			{effect.Weakness, 2},
			{effect.MiningFatigue, 1},
			{effect.Slowness, 1},
		}
	}
}

// ApplyDifficultyTick refreshes the difficulty ladder for p. It is called once
// per tick for every online player and depends only on the current count.
func (s *Service) ApplyDifficultyTick(p Player) {
	lives := s.Lives(p)
	if lives >= 6 {
		for _, t := range trackedDebuffs {
			p.RemoveEffect(t)
		}
		delete(s.debtReminderAt, p.UUID())
		return
	}

	for _, d := range ladderDebuffs(lives) {
		p.AddEffect(d.effect())
	}
	s.applyFinalMode(p, lives)
}

func (s *Service) applyFinalMode(p Player, lives int) {
	if lives != MinLives {
		delete(s.debtReminderAt, p.UUID())
		return
	}

	switch s.Config().FinalMode {
	case FinalModeDebt:
		s.applyDebtMode(p)
	case FinalModeBan, FinalModeSpectator, FinalModePrison:
		// Not implemented: these modes have no effect yet.
		delete(s.debtReminderAt, p.UUID())
	}
}

func (s *Service) applyDebtMode(p Player) {
	for _, d := range debtModeDebuffs {
		p.AddEffect(d.effect())
	}

	now := s.now()
	if next, ok := s.debtReminderAt[p.UUID()]; ok && now < next {
		return
	}
	notify(p, toneBad, keyDebtModeActive)
	s.debtReminderAt[p.UUID()] = now + debtReminderTicks
}

func ticksToDuration(ticks int) time.Duration {
	return time.Duration(ticks) * time.Second / ticksPerSecond
}
