package lives

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/sound"
)

// RitualStage is a step of the ritual transaction. Stages run in order and the
// transaction stops at the first one that rejects the attempt.
type RitualStage int

const (
	StageIdle RitualStage = iota
	StageCooldownCheck
	StageCapacityCheck
	StageResourceCheck
	StageCommit
)

// String returns the string representation of the stage.
func (s RitualStage) String() string {
	switch s {
	case StageIdle:
		return "Idle"
	case StageCooldownCheck:
		return "CooldownCheck"
	case StageCapacityCheck:
		return "CapacityCheck"
	case StageResourceCheck:
		return "ResourceCheck"
	case StageCommit:
		return "Commit"
	default:
		return "Unknown"
	}
}

// RitualOutcome is how a ritual attempt ended.
type RitualOutcome int

const (
	// RitualNotAltar means the block is not the configured altar. It is the
	// only outcome for which the interaction is not handled.
	RitualNotAltar RitualOutcome = iota
	RitualCooldown
	RitualFull
	RitualMissingResources
	RitualCommitted
)

// RitualResult describes a ritual attempt.
type RitualResult struct {
	Outcome RitualOutcome
	// Stage is the stage at which the attempt ended.
	Stage RitualStage
	// RemainingSeconds is set for RitualCooldown.
	RemainingSeconds int64
	// Lives is the life count after the attempt.
	Lives int
}

// Handled reports whether the interaction was consumed by the ritual, whether
// or not a life was restored.
func (r RitualResult) Handled() bool {
	return r.Outcome != RitualNotAltar
}

// BlockID returns the registry identifier of b, such as
// "minecraft:enchanting_table".
func BlockID(b world.Block) string {
	if b == nil {
		return ""
	}
	name, _ := b.EncodeBlock()
	return name
}

// IsRitualAltar reports whether b is the altar configured for the world.
func (s *Service) IsRitualAltar(b world.Block) bool {
	return BlockID(b) == s.Config().RitualAltarBlockID
}

// TryRitualRestore runs the ritual for p at b and reports whether the
// interaction was handled. It is false only when b is not the altar.
func (s *Service) TryRitualRestore(p Player, b world.Block) bool {
	return s.Ritual(p, b).Handled()
}

// Ritual runs the ritual transaction: cooldown, capacity and resource checks,
// then the commit. Every resource is verified before any is consumed, so a
// rejected attempt leaves the inventory, experience and lives untouched.
func (s *Service) Ritual(p Player, b world.Block) RitualResult {
	conf := s.Config()
	if !s.IsRitualAltar(b) {
		return RitualResult{Outcome: RitualNotAltar, Stage: StageIdle}
	}

	now := s.now()
	if lockedUntil := s.ritualCooldownUntil[p.UUID()]; now < lockedUntil {
		seconds := max(1, (lockedUntil-now)/ticksPerSecond)
		notify(p, toneInfo, keyRitualCooldown, seconds)
		return RitualResult{Outcome: RitualCooldown, Stage: StageCooldownCheck, RemainingSeconds: seconds, Lives: s.Lives(p)}
	}

	if !s.CanRestoreLives(p) {
		notify(p, toneInfo, keyRitualFullLives)
		return RitualResult{Outcome: RitualFull, Stage: StageCapacityCheck, Lives: MaxLives}
	}

	invs := []*inventory.Inventory{p.Inventory(), p.Offhand()}
	if countItems(invs, isTotem) < conf.RitualTotemCost ||
		countItems(invs, isDiamondBlock) < conf.RitualDiamondBlockCost ||
		p.ExperienceLevel() < conf.RitualXPLevelsCost {
		notify(p, toneBad, keyRitualMissingResources, conf.RitualTotemCost, conf.RitualDiamondBlockCost, conf.RitualXPLevelsCost)
		return RitualResult{Outcome: RitualMissingResources, Stage: StageResourceCheck, Lives: s.Lives(p)}
	}

	consumeItems(invs, isTotem, conf.RitualTotemCost)
	consumeItems(invs, isDiamondBlock, conf.RitualDiamondBlockCost)
	p.SetExperienceLevel(p.ExperienceLevel() - conf.RitualXPLevelsCost)

	updated := s.RestoreLives(p, 1)
	s.ritualCooldownUntil[p.UUID()] = now + int64(conf.RitualCooldownTicks)

	notify(p, toneGood, keyRitualSuccess, updated, MaxLives)
	p.PlaySound(sound.LevelUp{})
	s.log.Info("lives: ritual restored a life", "player", p.Name(), "lives", updated)

	return RitualResult{Outcome: RitualCommitted, Stage: StageCommit, Lives: updated}
}

// IsCatalyst reports whether s may be held to start the ritual.
func IsCatalyst(s item.Stack) bool {
	return !s.Empty() && isTotem(s)
}

func isTotem(s item.Stack) bool {
	_, ok := s.Item().(item.Totem)
	return ok
}

func isDiamondBlock(s item.Stack) bool {
	_, ok := s.Item().(block.Diamond)
	return ok
}

// countItems sums the counts of every stack in invs matching match.
func countItems(invs []*inventory.Inventory, match func(item.Stack) bool) int {
	total := 0
	for _, inv := range invs {
		for _, st := range inv.Slots() {
			if !st.Empty() && match(st) {
				total += st.Count()
			}
		}
	}
	return total
}

// consumeItems removes n matching items from invs, shrinking stacks in
// inventory then slot order. Callers check countItems first.
func consumeItems(invs []*inventory.Inventory, match func(item.Stack) bool, n int) {
	remaining := n
	for _, inv := range invs {
		for slot, st := range inv.Slots() {
			if remaining <= 0 {
				return
			}
			if st.Empty() || !match(st) {
				continue
			}
			remove := min(remaining, st.Count())
			if remove == st.Count() {
				_ = inv.SetItem(slot, item.Stack{})
			} else {
				_ = inv.SetItem(slot, st.Grow(-remove))
			}
			remaining -= remove
		}
	}
}
