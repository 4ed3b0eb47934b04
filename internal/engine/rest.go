package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// ShortRest spends one hit die per roll, healing roll + constitution modifier each, and recovers
// pact magic slots.
func (e *engine) ShortRest(char *dnd5e.Character, hitDiceRolls []int) (*dnd5e.Character, error) {
	if char == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if len(hitDiceRolls) > char.HitDice.Remaining() {
		return nil, errors.FailedPreconditionf("only %d hit dice remaining", char.HitDice.Remaining())
	}
	for _, roll := range hitDiceRolls {
		if roll < 1 || roll > char.HitDice.Size {
			return nil, errors.InvalidArgumentf("hit die roll %d outside 1..%d", roll, char.HitDice.Size)
		}
	}

	next := char.Clone()
	con := next.AbilityScores.Modifier(rules.Constitution)
	hp := next.HitPoints()
	for _, roll := range hitDiceRolls {
		hp = rules.ApplyHealing(hp, rules.RolledHitPointGain(roll, con))
	}
	next.SetHitPoints(hp)
	next.HitDice.Spent += len(hitDiceRolls)

	if next.PactMagic != nil {
		next.PactMagic.Expended = 0
	}
	return next, nil
}

// LongRest restores hit points and every slot, drops temporary hit points and regains half the
// hit dice, at least one.
func (e *engine) LongRest(char *dnd5e.Character) *dnd5e.Character {
	if char == nil {
		return nil
	}
	next := char.Clone()
	next.CurrentHP = next.MaxHP
	next.TempHP = 0

	regained := max(1, next.HitDice.Total/2)
	next.HitDice.Spent = max(0, next.HitDice.Spent-regained)

	for i := range next.SpellSlots {
		next.SpellSlots[i].Expended = 0
	}
	if next.PactMagic != nil {
		next.PactMagic.Expended = 0
	}
	return next
}

// ExpendSpellSlot uses one slot from the referenced pool
func (e *engine) ExpendSpellSlot(char *dnd5e.Character, slot SlotRef) (*dnd5e.Character, error) {
	return e.adjustSlot(char, slot, 1)
}

// RecoverSpellSlot returns one expended slot to the referenced pool
func (e *engine) RecoverSpellSlot(char *dnd5e.Character, slot SlotRef) (*dnd5e.Character, error) {
	return e.adjustSlot(char, slot, -1)
}

func (e *engine) adjustSlot(char *dnd5e.Character, slot SlotRef, delta int) (*dnd5e.Character, error) {
	if char == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	next := char.Clone()
	var expended *int
	var total int
	if slot.Pact {
		if next.PactMagic == nil {
			return nil, errors.FailedPrecondition("character has no pact magic")
		}
		expended, total = &next.PactMagic.Expended, next.PactMagic.SlotCount
	} else {
		if slot.Level < 1 || slot.Level > len(next.SpellSlots) {
			return nil, errors.InvalidArgumentf("spell slot level %d outside 1..%d", slot.Level, len(next.SpellSlots))
		}
		s := &next.SpellSlots[slot.Level-1]
		expended, total = &s.Expended, s.Total
	}

	switch {
	case delta > 0 && *expended >= total:
		return nil, errors.FailedPrecondition("no spell slot available").WithMeta("level", slot.Level)
	case delta < 0 && *expended <= 0:
		return nil, errors.FailedPrecondition("no expended spell slot to recover").WithMeta("level", slot.Level)
	}
	*expended += delta
	return next, nil
}
